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

package mirror

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Iyemon-018/azfiles/common"
)

// fakeTree is an in-memory tree implementing both TreeSource and TreeSink.
// Keys are slash-separated paths relative to the root; "" is the root itself.
type fakeTree struct {
	dirs      map[string]bool
	files     map[string]string
	vanished  map[string]bool  // listed, but gone by the time Exists runs
	existsErr map[string]error // Exists fails hard for these paths
	listErr   map[string]error // List fails hard for these directories
}

func newFakeTree() *fakeTree {
	return &fakeTree{
		dirs:      map[string]bool{"": true},
		files:     map[string]string{},
		vanished:  map[string]bool{},
		existsErr: map[string]error{},
		listErr:   map[string]error{},
	}
}

func parentOf(p string) string {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return ""
	}
	return p[:idx]
}

func (f *fakeTree) List(ctx context.Context, dirPath string) ([]Entry, error) {
	if err := f.listErr[dirPath]; err != nil {
		return nil, err
	}
	if !f.dirs[dirPath] {
		return nil, errors.New("directory does not exist: " + dirPath)
	}

	var entries []Entry
	for d := range f.dirs {
		if d != "" && parentOf(d) == dirPath {
			entries = append(entries, Entry{Name: d[strings.LastIndex(d, "/")+1:], EntityType: common.EEntityType.Folder()})
		}
	}
	for p, content := range f.files {
		if parentOf(p) == dirPath {
			entries = append(entries, Entry{Name: p[strings.LastIndex(p, "/")+1:], EntityType: common.EEntityType.File(), Size: int64(len(content))})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (f *fakeTree) Open(ctx context.Context, filePath string) (io.ReadCloser, int64, error) {
	content, ok := f.files[filePath]
	if !ok {
		return nil, 0, errors.New("file does not exist: " + filePath)
	}
	return io.NopCloser(strings.NewReader(content)), int64(len(content)), nil
}

func (f *fakeTree) Exists(ctx context.Context, filePath string) (bool, error) {
	if err := f.existsErr[filePath]; err != nil {
		return false, err
	}
	if f.vanished[filePath] {
		return false, nil
	}
	_, ok := f.files[filePath]
	return ok, nil
}

func (f *fakeTree) EnsureDir(ctx context.Context, dirPath string) error {
	for p := dirPath; p != ""; p = parentOf(p) {
		f.dirs[p] = true
	}
	f.dirs[""] = true
	return nil
}

func (f *fakeTree) WriteFile(ctx context.Context, filePath string, body io.Reader, size int64) error {
	if !f.dirs[parentOf(filePath)] {
		return errors.New("parent directory was never created for " + filePath)
	}
	content, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.files[filePath] = string(content)
	return nil
}

func TestMirrorReproducesTree(t *testing.T) {
	a := assert.New(t)

	src := newFakeTree()
	src.files["a.txt"] = "hello"
	src.files["sub/b.txt"] = "world"
	src.dirs["sub"] = true
	src.dirs["empty"] = true

	dst := newFakeTree()
	err := NewMirrorer(src, dst, nil).Mirror(context.Background())

	a.NoError(err)
	a.Equal(src.files, dst.files)
	a.True(dst.dirs["sub"])
	a.True(dst.dirs["empty"], "empty source directories must appear at the destination")
}

func TestMirrorIsIdempotent(t *testing.T) {
	a := assert.New(t)

	src := newFakeTree()
	src.files["a.txt"] = "hello"
	src.files["sub/b.txt"] = "world"
	src.dirs["sub"] = true

	dst := newFakeTree()
	m := NewMirrorer(src, dst, nil)

	a.NoError(m.Mirror(context.Background()))
	a.NoError(m.Mirror(context.Background()))
	a.Equal(src.files, dst.files)
}

func TestMirrorKeepsDestinationExtras(t *testing.T) {
	a := assert.New(t)

	src := newFakeTree()
	src.files["a.txt"] = "new content"

	dst := newFakeTree()
	dst.files["a.txt"] = "stale content"
	dst.files["keep.txt"] = "not in the source"
	dst.dirs["leftover"] = true

	err := NewMirrorer(src, dst, nil).Mirror(context.Background())

	a.NoError(err)
	a.Equal("new content", dst.files["a.txt"], "overlapping files are overwritten")
	a.Equal("not in the source", dst.files["keep.txt"], "extra destination files are never deleted")
	a.True(dst.dirs["leftover"], "extra destination directories are never deleted")
}

func TestMirrorSkipsVanishedFile(t *testing.T) {
	a := assert.New(t)

	src := newFakeTree()
	src.files["a.txt"] = "hello"
	src.files["ghost.txt"] = "going, going"
	src.vanished["ghost.txt"] = true

	dst := newFakeTree()
	err := NewMirrorer(src, dst, nil).Mirror(context.Background())

	a.NoError(err, "a file that vanished between listing and transfer is skipped, not fatal")
	a.Equal("hello", dst.files["a.txt"])
	a.NotContains(dst.files, "ghost.txt")
}

func TestMirrorAbortsOnExistsError(t *testing.T) {
	a := assert.New(t)

	src := newFakeTree()
	src.files["a.txt"] = "hello"
	src.existsErr["a.txt"] = errors.New("transient outage")

	dst := newFakeTree()
	err := NewMirrorer(src, dst, nil).Mirror(context.Background())

	a.ErrorContains(err, "transient outage")
}

func TestMirrorAbortsOnListError(t *testing.T) {
	a := assert.New(t)

	src := newFakeTree()
	src.dirs["sub"] = true
	src.files["sub/a.txt"] = "hello"
	src.listErr["sub"] = errors.New("listing blew up")

	dst := newFakeTree()
	err := NewMirrorer(src, dst, nil).Mirror(context.Background())

	a.ErrorContains(err, "listing blew up")
	a.True(dst.dirs["sub"], "the directory itself is created before its listing is attempted")
}
