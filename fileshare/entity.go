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
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/directory"

	"github.com/Iyemon-018/azfiles/common"
)

// Entry is one direct child of a listed directory.
type Entry struct {
	Name          string
	EntityType    common.EntityType
	ContentLength int64 // zero for directories
}

func (e Entry) IsDirectory() bool {
	return e.EntityType == common.EEntityType.Folder()
}

// appendSegmentEntries converts one listing page into Entries, skipping
// malformed items the service should never send.
func appendSegmentEntries(entries []Entry, files []*directory.File, directories []*directory.Directory) []Entry {
	for _, f := range files {
		if f == nil || f.Name == nil {
			continue
		}
		contentLength := int64(0)
		if f.Properties != nil && f.Properties.ContentLength != nil {
			contentLength = *f.Properties.ContentLength
		}
		entries = append(entries, Entry{
			Name:          *f.Name,
			EntityType:    common.EEntityType.File(),
			ContentLength: contentLength,
		})
	}
	for _, d := range directories {
		if d == nil || d.Name == nil {
			continue
		}
		entries = append(entries, Entry{
			Name:       *d.Name,
			EntityType: common.EEntityType.Folder(),
		})
	}
	return entries
}
