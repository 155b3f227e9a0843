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

// Package mirror reproduces a source tree's structure and file contents at a
// destination. The traversal is sequential and depth-first, additive and
// overwrite-only: it creates directories (including empty ones) before
// descending, copies each file's full byte content, and never deletes
// anything the destination already has.
//
// The same algorithm serves both transfer directions; upload and download are
// just different pairings of the TreeSource and TreeSink capabilities.
package mirror

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/Iyemon-018/azfiles/common"
)

// Entry is one direct child of a listed directory, named relative to its
// parent.
type Entry struct {
	Name       string
	EntityType common.EntityType
	Size       int64 // zero for directories
}

// TreeSource lists and reads an existing tree. Paths are slash-separated and
// relative to the source root; "" is the root itself. List gives children in
// whatever order the underlying store yields them - no order is guaranteed.
type TreeSource interface {
	List(ctx context.Context, dirPath string) ([]Entry, error)
	Open(ctx context.Context, filePath string) (io.ReadCloser, int64, error)
	Exists(ctx context.Context, filePath string) (bool, error)
}

// TreeSink materializes directories and files. EnsureDir creates the
// directory (and any missing parents) if absent. WriteFile overwrites any
// existing file at the path - last write wins.
type TreeSink interface {
	EnsureDir(ctx context.Context, dirPath string) error
	WriteFile(ctx context.Context, filePath string, body io.Reader, size int64) error
}

// Mirrorer copies one tree into another. It holds no state between runs;
// re-running over the same pair is idempotent.
type Mirrorer struct {
	src    TreeSource
	dst    TreeSink
	logger common.ILogger
}

func NewMirrorer(src TreeSource, dst TreeSink, logger common.ILogger) *Mirrorer {
	return &Mirrorer{src: src, dst: dst, logger: logger}
}

// Mirror walks the source tree from its root and reproduces it under the
// destination root. Any listing, read or write failure aborts the whole run;
// there is no retry and no rollback, so a failed run leaves whatever subset
// it managed to create.
func (m *Mirrorer) Mirror(ctx context.Context) error {
	return m.mirrorDir(ctx, "")
}

func (m *Mirrorer) mirrorDir(ctx context.Context, dirPath string) error {
	// Create the destination directory before looking at the contents, so
	// empty source directories still appear at the destination.
	if err := m.dst.EnsureDir(ctx, dirPath); err != nil {
		return err
	}

	entries, err := m.src.List(ctx, dirPath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		entryPath := path.Join(dirPath, entry.Name)

		if entry.EntityType == common.EEntityType.Folder() {
			if err := m.mirrorDir(ctx, entryPath); err != nil {
				return err
			}
			continue
		}

		if err := m.mirrorFile(ctx, entryPath); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mirrorer) mirrorFile(ctx context.Context, filePath string) error {
	// Listings can go stale; re-check right before the transfer. A vanished
	// file is skipped, not fatal - the traversal moves on to the next sibling.
	exists, err := m.src.Exists(ctx, filePath)
	if err != nil {
		return err
	}
	if !exists {
		m.logInfo(fmt.Sprintf("skipping %s: no longer exists at the source", filePath))
		return nil
	}

	body, size, err := m.src.Open(ctx, filePath)
	if err != nil {
		return err
	}
	defer body.Close() // release the handle before the next entry even when the write fails

	return m.dst.WriteFile(ctx, filePath, body, size)
}

func (m *Mirrorer) logInfo(msg string) {
	if m.logger != nil && m.logger.ShouldLog(common.ELogLevel.Info()) {
		m.logger.Log(common.ELogLevel.Info(), msg)
	}
}
