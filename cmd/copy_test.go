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

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Iyemon-018/azfiles/common"
)

const testShareURL = "https://myaccount.file.core.windows.net/myshare"

func TestCopyCookUpload(t *testing.T) {
	a := assert.New(t)

	cooked, err := rawCopyCmdArgs{src: "/tmp/data", dst: testShareURL + "/dir", recursive: true}.cook()
	a.NoError(err)
	a.Equal(common.ELocation.Local(), cooked.srcLocation)
	a.Equal(common.ELocation.File(), cooked.dstLocation)
	a.True(cooked.recursive)
}

func TestCopyCookDownload(t *testing.T) {
	a := assert.New(t)

	cooked, err := rawCopyCmdArgs{src: testShareURL + "/dir/file.txt", dst: "/tmp/file.txt"}.cook()
	a.NoError(err)
	a.Equal(common.ELocation.File(), cooked.srcLocation)
	a.Equal(common.ELocation.Local(), cooked.dstLocation)
}

func TestCopyCookServiceSide(t *testing.T) {
	a := assert.New(t)

	cooked, err := rawCopyCmdArgs{src: testShareURL + "/a.txt", dst: testShareURL + "/b.txt"}.cook()
	a.NoError(err)
	a.True(cooked.srcLocation.IsRemote())
	a.True(cooked.dstLocation.IsRemote())
}

func TestCopyCookRejectsLocalToLocal(t *testing.T) {
	a := assert.New(t)

	_, err := rawCopyCmdArgs{src: "/tmp/a", dst: "/tmp/b"}.cook()
	a.ErrorContains(err, "local to local")
}

func TestCopyCookRejectsUnknownLocation(t *testing.T) {
	a := assert.New(t)

	_, err := rawCopyCmdArgs{src: "https://myaccount.blob.core.windows.net/container", dst: "/tmp/b"}.cook()
	a.Error(err)
}

func TestMakeCookRequiresTopLevelShareURL(t *testing.T) {
	a := assert.New(t)

	cooked, err := rawMakeCmdArgs{resourceToCreate: testShareURL, quotaGB: 5}.cook()
	a.NoError(err)
	a.Equal(int32(5), cooked.quotaGB)

	_, err = rawMakeCmdArgs{resourceToCreate: testShareURL + "/dir"}.cook()
	a.ErrorContains(err, "top-level")

	_, err = rawMakeCmdArgs{resourceToCreate: "/local/path"}.cook()
	a.Error(err)
}

func TestRemoveCookRejectsLocalPath(t *testing.T) {
	a := assert.New(t)

	_, err := rawRemoveCmdArgs{resourceToDelete: "/local/path"}.cook()
	a.Error(err)

	cooked, err := rawRemoveCmdArgs{resourceToDelete: testShareURL + "/dir", isDirectory: true}.cook()
	a.NoError(err)
	a.True(cooked.isDirectory)
}
