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

// Package fileshare wraps the azfile SDK clients behind the small capability
// set the rest of the application needs: existence checks, create-if-missing,
// listing, whole-file reads and writes, deletes and server-side copies.
// "Does not exist" is always an explicit result, never a nil client.
package fileshare

import (
	"context"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/directory"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/file"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/fileerror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/service"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/share"
	"github.com/pkg/errors"
)

// Client drives a single file share. Paths passed to its methods are
// share-relative, use forward slashes, and "" denotes the share root.
type Client struct {
	shareName   string
	shareClient *share.Client
}

func NewClient(serviceClient *service.Client, shareName string) *Client {
	return &Client{
		shareName:   shareName,
		shareClient: serviceClient.NewShareClient(shareName),
	}
}

func (c *Client) ShareName() string {
	return c.shareName
}

// directoryClient returns the client for a share-relative directory path.
func (c *Client) directoryClient(dirPath string) *directory.Client {
	if dirPath == "" {
		return c.shareClient.NewRootDirectoryClient()
	}
	return c.shareClient.NewDirectoryClient(dirPath)
}

// fileClient returns the client for a share-relative file path.
func (c *Client) fileClient(filePath string) *file.Client {
	return c.shareClient.NewRootDirectoryClient().NewFileClient(filePath)
}

// EnsureShare creates the share if it does not exist yet.
func (c *Client) EnsureShare(ctx context.Context, quotaGB int32) (created bool, err error) {
	var options *share.CreateOptions
	if quotaGB > 0 {
		options = &share.CreateOptions{Quota: &quotaGB}
	}

	_, err = c.shareClient.Create(ctx, options)
	if fileerror.HasCode(err, fileerror.ShareAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "creating share %q", c.shareName)
	}
	return true, nil
}

func (c *Client) ShareExists(ctx context.Context) (bool, error) {
	_, err := c.shareClient.GetProperties(ctx, nil)
	if fileerror.HasCode(err, fileerror.ShareNotFound, fileerror.ShareBeingDeleted, fileerror.ResourceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "probing share %q", c.shareName)
	}
	return true, nil
}

// EnsureDirectory creates the directory and any missing parents. The service
// requires parents to exist before children, so this walks the path one
// segment at a time.
func (c *Client) EnsureDirectory(ctx context.Context, dirPath string) error {
	if dirPath == "" {
		return nil // the share root always exists
	}

	segments := strings.Split(strings.Trim(dirPath, "/"), "/")
	current := ""
	for _, segment := range segments {
		if current == "" {
			current = segment
		} else {
			current += "/" + segment
		}

		_, err := c.shareClient.NewDirectoryClient(current).Create(ctx, nil)
		if fileerror.HasCode(err, fileerror.ResourceAlreadyExists) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "creating directory %q", current)
		}
	}
	return nil
}

func (c *Client) DirectoryExists(ctx context.Context, dirPath string) (bool, error) {
	_, err := c.directoryClient(dirPath).GetProperties(ctx, nil)
	if fileerror.HasCode(err, fileerror.ResourceNotFound, fileerror.ParentNotFound, fileerror.ShareNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "probing directory %q", dirPath)
	}
	return true, nil
}

func (c *Client) FileExists(ctx context.Context, filePath string) (bool, error) {
	_, err := c.fileClient(filePath).GetProperties(ctx, nil)
	if fileerror.HasCode(err, fileerror.ResourceNotFound, fileerror.ParentNotFound, fileerror.ShareNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "probing file %q", filePath)
	}
	return true, nil
}

// ListChildren returns the direct children of a directory, in whatever order
// the service yields them.
func (c *Client) ListChildren(ctx context.Context, dirPath string) ([]Entry, error) {
	pager := c.directoryClient(dirPath).NewListFilesAndDirectoriesPager(nil)

	var entries []Entry
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "listing %q", dirPath)
		}
		entries = appendSegmentEntries(entries, page.Segment.Files, page.Segment.Directories)
	}
	return entries, nil
}

// UploadFile creates (or overwrites) the remote file sized to size and writes
// the full content from body. Last write wins.
func (c *Client) UploadFile(ctx context.Context, filePath string, body io.Reader, size int64) error {
	fileClient := c.fileClient(filePath)

	if _, err := fileClient.Create(ctx, size, nil); err != nil {
		return errors.Wrapf(err, "creating file %q", filePath)
	}
	if size == 0 {
		return nil
	}

	if err := fileClient.UploadStream(ctx, body, nil); err != nil {
		return errors.Wrapf(err, "writing content of %q", filePath)
	}
	return nil
}

// DownloadFile opens the remote file for reading. The caller owns the
// returned stream and must close it.
func (c *Client) DownloadFile(ctx context.Context, filePath string) (io.ReadCloser, int64, error) {
	resp, err := c.fileClient(filePath).DownloadStream(ctx, nil)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "downloading %q", filePath)
	}

	length := int64(0)
	if resp.ContentLength != nil {
		length = *resp.ContentLength
	}
	return resp.Body, length, nil
}

// DeleteFileIfExists deletes the file, reporting whether it was present.
func (c *Client) DeleteFileIfExists(ctx context.Context, filePath string) (bool, error) {
	_, err := c.fileClient(filePath).Delete(ctx, nil)
	if fileerror.HasCode(err, fileerror.ResourceNotFound, fileerror.ParentNotFound, fileerror.ShareNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "deleting file %q", filePath)
	}
	return true, nil
}

// DeleteDirectoryIfExists deletes the directory, reporting whether it was
// present. The service rejects deletion of non-empty directories.
func (c *Client) DeleteDirectoryIfExists(ctx context.Context, dirPath string) (bool, error) {
	_, err := c.directoryClient(dirPath).Delete(ctx, nil)
	if fileerror.HasCode(err, fileerror.ResourceNotFound, fileerror.ParentNotFound, fileerror.ShareNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "deleting directory %q", dirPath)
	}
	return true, nil
}

// CopyFile performs a server-side copy within the share. The copy for
// same-account sources completes synchronously on the service side, so we
// only kick it off and report errors starting it.
func (c *Client) CopyFile(ctx context.Context, srcPath, dstPath string) error {
	return c.CopyFileFromURL(ctx, c.fileClient(srcPath).URL(), dstPath)
}

// CopyFileFromURL starts a server-side copy from any reachable source URL.
// The source URL must carry its own authorization (for example a SAS) when it
// lives outside this client's account.
func (c *Client) CopyFileFromURL(ctx context.Context, srcURL, dstPath string) error {
	_, err := c.fileClient(dstPath).StartCopyFromURL(ctx, srcURL, nil)
	if err != nil {
		return errors.Wrapf(err, "copying to %q", dstPath)
	}
	return nil
}
