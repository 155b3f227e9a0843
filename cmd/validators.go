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
	"net/url"
	"strings"

	"github.com/Iyemon-018/azfiles/common"
)

// inferArgumentLocation decides whether a command argument points to a file
// share or the local filesystem. Anything that does not parse as a file
// endpoint URL is treated as a local path.
func inferArgumentLocation(arg string) common.Location {
	if strings.HasPrefix(arg, "http") {
		// NOTE: sometimes, a local path can also be parsed as a url. To avoid thinking it's a URL, check Scheme and Host
		u, err := url.Parse(arg)
		if err == nil && u.Scheme != "" && u.Host != "" {
			if strings.Contains(strings.ToLower(u.Host), ".file") {
				return common.ELocation.File()
			}
			return common.ELocation.Unknown()
		}
	}

	return common.ELocation.Local()
}
