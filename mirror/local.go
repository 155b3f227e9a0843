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
	"io"
	"os"
	"path/filepath"

	"github.com/Iyemon-018/azfiles/common"
)

// LocalTree serves a directory on the local filesystem as both a TreeSource
// and a TreeSink. Relative slash paths are translated to OS paths under Root.
type LocalTree struct {
	Root string
}

func NewLocalTree(root string) *LocalTree {
	return &LocalTree{Root: root}
}

func (t *LocalTree) osPath(relPath string) string {
	return filepath.Join(t.Root, filepath.FromSlash(relPath))
}

func (t *LocalTree) List(_ context.Context, dirPath string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(t.osPath(dirPath))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			entries = append(entries, Entry{
				Name:       de.Name(),
				EntityType: common.EEntityType.Folder(),
			})
			continue
		}
		if !de.Type().IsRegular() {
			continue // sockets, devices and friends have no counterpart on a file share
		}

		info, err := de.Info()
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Name:       de.Name(),
			EntityType: common.EEntityType.File(),
			Size:       info.Size(),
		})
	}
	return entries, nil
}

func (t *LocalTree) Open(_ context.Context, filePath string) (io.ReadCloser, int64, error) {
	f, err := os.Open(t.osPath(filePath))
	if err != nil {
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

func (t *LocalTree) Exists(_ context.Context, filePath string) (bool, error) {
	_, err := os.Stat(t.osPath(filePath))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (t *LocalTree) EnsureDir(_ context.Context, dirPath string) error {
	return os.MkdirAll(t.osPath(dirPath), 0755)
}

func (t *LocalTree) WriteFile(_ context.Context, filePath string, body io.Reader, _ int64) error {
	target := t.osPath(filePath)

	// the parent may not exist when the file was reached without visiting its
	// directory first (e.g. a direct single-file download)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	f, err := os.Create(target) // truncates any previous content
	if err != nil {
		return err
	}

	_, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if copyErr != nil {
		return copyErr
	}
	return closeErr
}
