// Copyright © 2017 Microsoft <wastore@microsoft.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package fileshare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResourceShareRoot(t *testing.T) {
	a := assert.New(t)

	parts, err := ParseResource("https://myaccount.file.core.windows.net/myshare")
	a.NoError(err)
	a.Equal("https://myaccount.file.core.windows.net/", parts.ServiceURL)
	a.Equal("myshare", parts.ShareName)
	a.Equal("", parts.Path)
}

func TestParseResourceNestedPath(t *testing.T) {
	a := assert.New(t)

	parts, err := ParseResource("https://myaccount.file.core.windows.net/myshare/dir/sub/file.txt")
	a.NoError(err)
	a.Equal("myshare", parts.ShareName)
	a.Equal("dir/sub/file.txt", parts.Path)
}

func TestParseResourceTrailingSlash(t *testing.T) {
	a := assert.New(t)

	parts, err := ParseResource("https://myaccount.file.core.windows.net/myshare/dir/")
	a.NoError(err)
	a.Equal("dir", parts.Path, "directory URLs with and without the trailing slash name the same resource")
}

func TestParseResourceKeepsSAS(t *testing.T) {
	a := assert.New(t)

	parts, err := ParseResource("https://myaccount.file.core.windows.net/myshare/file.txt?sv=2021-06-08&ss=f&sig=fakesig")
	a.NoError(err)
	a.Contains(parts.ServiceURL, "sig=")
	a.Equal("file.txt", parts.Path)
}

func TestParseResourceRejectsMissingShare(t *testing.T) {
	a := assert.New(t)

	_, err := ParseResource("https://myaccount.file.core.windows.net/")
	a.Error(err)
}
