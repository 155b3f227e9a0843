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
	"path"

	"github.com/Iyemon-018/azfiles/fileshare"
)

// RemoteTree serves a directory on a file share as both a TreeSource and a
// TreeSink. Root is share-relative; "" is the share root.
type RemoteTree struct {
	client *fileshare.Client
	root   string
}

func NewRemoteTree(client *fileshare.Client, root string) *RemoteTree {
	return &RemoteTree{client: client, root: root}
}

func (t *RemoteTree) remotePath(relPath string) string {
	return path.Join(t.root, relPath)
}

func (t *RemoteTree) List(ctx context.Context, dirPath string) ([]Entry, error) {
	children, err := t.client.ListChildren(ctx, t.remotePath(dirPath))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, Entry{
			Name:       child.Name,
			EntityType: child.EntityType,
			Size:       child.ContentLength,
		})
	}
	return entries, nil
}

func (t *RemoteTree) Open(ctx context.Context, filePath string) (io.ReadCloser, int64, error) {
	return t.client.DownloadFile(ctx, t.remotePath(filePath))
}

func (t *RemoteTree) Exists(ctx context.Context, filePath string) (bool, error) {
	return t.client.FileExists(ctx, t.remotePath(filePath))
}

func (t *RemoteTree) EnsureDir(ctx context.Context, dirPath string) error {
	return t.client.EnsureDirectory(ctx, t.remotePath(dirPath))
}

func (t *RemoteTree) WriteFile(ctx context.Context, filePath string, body io.Reader, size int64) error {
	return t.client.UploadFile(ctx, t.remotePath(filePath), body, size)
}
