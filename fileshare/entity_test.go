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

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/directory"
	"github.com/stretchr/testify/assert"

	"github.com/Iyemon-018/azfiles/common"
)

func TestAppendSegmentEntries(t *testing.T) {
	a := assert.New(t)

	fileprop := directory.FileProperty{ContentLength: to.Ptr(int64(42))}
	files := []*directory.File{
		to.Ptr(directory.File{Name: to.Ptr("a.txt"), Properties: to.Ptr(fileprop)}),
		to.Ptr(directory.File{Name: to.Ptr("b.txt")}), // no properties on this one
	}
	directories := []*directory.Directory{
		to.Ptr(directory.Directory{Name: to.Ptr("sub")}),
	}

	entries := appendSegmentEntries(nil, files, directories)

	a.Len(entries, 3)
	a.Equal(Entry{Name: "a.txt", EntityType: common.EEntityType.File(), ContentLength: 42}, entries[0])
	a.Equal(Entry{Name: "b.txt", EntityType: common.EEntityType.File()}, entries[1])
	a.Equal(Entry{Name: "sub", EntityType: common.EEntityType.Folder()}, entries[2])
	a.True(entries[2].IsDirectory())
	a.False(entries[0].IsDirectory())
}

func TestAppendSegmentEntriesSkipsMalformedItems(t *testing.T) {
	a := assert.New(t)

	files := []*directory.File{nil, to.Ptr(directory.File{})}
	directories := []*directory.Directory{nil, to.Ptr(directory.Directory{})}

	entries := appendSegmentEntries(nil, files, directories)
	a.Empty(entries)
}

func TestAppendSegmentEntriesAccumulates(t *testing.T) {
	a := assert.New(t)

	first := appendSegmentEntries(nil,
		[]*directory.File{to.Ptr(directory.File{Name: to.Ptr("page1.txt")})}, nil)
	second := appendSegmentEntries(first,
		[]*directory.File{to.Ptr(directory.File{Name: to.Ptr("page2.txt")})}, nil)

	a.Len(second, 2)
	a.Equal("page1.txt", second[0].Name)
	a.Equal("page2.txt", second[1].Name)
}
