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
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/file"
)

// ResourceParts is the decomposition of a file share URL into the pieces the
// rest of the application works with.
type ResourceParts struct {
	ServiceURL string // scheme://host/, with any SAS re-attached
	ShareName  string
	Path       string // share-relative, "" for the share root
}

// ParseResource splits a raw file share URL such as
// https://account.file.core.windows.net/share/dir/file.txt?sv=...
// into service URL, share name and share-relative path.
func ParseResource(rawURL string) (ResourceParts, error) {
	parts, err := file.ParseURL(rawURL)
	if err != nil {
		return ResourceParts{}, fmt.Errorf("invalid file share URL %q: %w", rawURL, err)
	}
	if parts.ShareName == "" {
		return ResourceParts{}, fmt.Errorf("URL %q does not name a share", rawURL)
	}

	serviceURL := parts.Scheme + "://" + parts.Host + "/"
	if sas := parts.SAS.Encode(); sas != "" {
		serviceURL += "?" + sas
	}

	return ResourceParts{
		ServiceURL: serviceURL,
		ShareName:  parts.ShareName,
		Path:       strings.Trim(parts.DirectoryOrFilePath, "/"),
	}, nil
}
