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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Iyemon-018/azfiles/common"
	"github.com/Iyemon-018/azfiles/fileshare"
	"github.com/Iyemon-018/azfiles/mirror"
)

// holds raw input from user
type rawCopyCmdArgs struct {
	src       string
	dst       string
	recursive bool
}

// parse raw input
func (raw rawCopyCmdArgs) cook() (cookedCopyCmdArgs, error) {
	srcLocation := inferArgumentLocation(raw.src)
	dstLocation := inferArgumentLocation(raw.dst)

	if srcLocation == common.ELocation.Unknown() || dstLocation == common.ELocation.Unknown() {
		return cookedCopyCmdArgs{}, errors.New("the combination of source and destination could not be identified; only local paths and file share URLs are supported")
	}
	if srcLocation.IsLocal() && dstLocation.IsLocal() {
		return cookedCopyCmdArgs{}, errors.New("local to local copies are not supported; use your OS tools instead")
	}

	return cookedCopyCmdArgs{
		src:         raw.src,
		dst:         raw.dst,
		srcLocation: srcLocation,
		dstLocation: dstLocation,
		recursive:   raw.recursive,
	}, nil
}

// holds processed/actionable args
type cookedCopyCmdArgs struct {
	src         string
	dst         string
	srcLocation common.Location
	dstLocation common.Location
	recursive   bool
}

func (cooked cookedCopyCmdArgs) process() error {
	switch {
	case cooked.srcLocation.IsLocal() && cooked.dstLocation.IsRemote():
		return cooked.processUpload()
	case cooked.srcLocation.IsRemote() && cooked.dstLocation.IsLocal():
		return cooked.processDownload()
	case cooked.srcLocation.IsRemote() && cooked.dstLocation.IsRemote():
		return cooked.processServiceSideCopy()
	default:
		return errors.New("the combination of source and destination is not supported")
	}
}

func (cooked cookedCopyCmdArgs) processUpload() error {
	client, parts, err := createShareClient(cooked.dst)
	if err != nil {
		return err
	}

	ctx := context.Background()

	shareExists, err := client.ShareExists(ctx)
	if err != nil {
		return err
	}
	if !shareExists {
		return fmt.Errorf("the share %q does not exist; create it first with the make command", client.ShareName())
	}

	srcInfo, err := os.Stat(cooked.src)
	if os.IsNotExist(err) {
		return fmt.Errorf("the source %q does not exist", cooked.src)
	}
	if err != nil {
		return err
	}

	if cooked.recursive {
		if !srcInfo.IsDir() {
			return fmt.Errorf("the source %q is not a directory; drop --recursive to upload a single file", cooked.src)
		}

		mirrorer := mirror.NewMirrorer(
			mirror.NewLocalTree(cooked.src),
			mirror.NewRemoteTree(client, parts.Path),
			common.AzfilesCurrentJobLogger)
		if err := mirrorer.Mirror(ctx); err != nil {
			return err
		}

		glcm.Info(fmt.Sprintf("Successfully mirrored %q into %q.", cooked.src, cooked.dst))
		return nil
	}

	if srcInfo.IsDir() {
		return fmt.Errorf("the source %q is a directory; use --recursive to upload it", cooked.src)
	}

	destPath := parts.Path
	if isDir, err := remotePathIsDirectory(ctx, client, destPath); err != nil {
		return err
	} else if isDir {
		destPath = path.Join(destPath, filepath.Base(cooked.src))
	}

	f, err := os.Open(cooked.src)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := client.UploadFile(ctx, destPath, f, srcInfo.Size()); err != nil {
		return err
	}

	glcm.Info(fmt.Sprintf("Successfully uploaded %q to %q.", cooked.src, destPath))
	return nil
}

func (cooked cookedCopyCmdArgs) processDownload() error {
	client, parts, err := createShareClient(cooked.src)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if cooked.recursive {
		dirExists, err := client.DirectoryExists(ctx, parts.Path)
		if err != nil {
			return err
		}
		if !dirExists {
			return fmt.Errorf("the remote directory %q does not exist", parts.Path)
		}

		mirrorer := mirror.NewMirrorer(
			mirror.NewRemoteTree(client, parts.Path),
			mirror.NewLocalTree(cooked.dst),
			common.AzfilesCurrentJobLogger)
		if err := mirrorer.Mirror(ctx); err != nil {
			return err
		}

		glcm.Info(fmt.Sprintf("Successfully mirrored %q into %q.", cooked.src, cooked.dst))
		return nil
	}

	fileExists, err := client.FileExists(ctx, parts.Path)
	if err != nil {
		return err
	}
	if !fileExists {
		return fmt.Errorf("the remote file %q does not exist", parts.Path)
	}

	destPath := cooked.dst
	if info, err := os.Stat(destPath); err == nil && info.IsDir() {
		destPath = filepath.Join(destPath, path.Base(parts.Path))
	}

	body, _, err := client.DownloadFile(ctx, parts.Path)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}
	f, err := os.Create(destPath) // overwrites any previous content
	if err != nil {
		return err
	}

	_, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if copyErr != nil {
		return copyErr
	}
	if closeErr != nil {
		return closeErr
	}

	glcm.Info(fmt.Sprintf("Successfully downloaded %q to %q.", parts.Path, destPath))
	return nil
}

func (cooked cookedCopyCmdArgs) processServiceSideCopy() error {
	if cooked.recursive {
		return errors.New("recursive service-side copies are not supported; copy one file at a time")
	}

	srcClient, srcParts, err := createShareClient(cooked.src)
	if err != nil {
		return err
	}
	dstClient, dstParts, err := createShareClient(cooked.dst)
	if err != nil {
		return err
	}
	if srcParts.Path == "" || dstParts.Path == "" {
		return errors.New("service-side copies need both a source file path and a destination file path")
	}

	ctx := context.Background()

	fileExists, err := srcClient.FileExists(ctx, srcParts.Path)
	if err != nil {
		return err
	}
	if !fileExists {
		return fmt.Errorf("the remote file %q does not exist", srcParts.Path)
	}

	if err := dstClient.CopyFileFromURL(ctx, cooked.src, dstParts.Path); err != nil {
		return err
	}

	glcm.Info(fmt.Sprintf("Successfully copied %q to %q.", srcParts.Path, dstParts.Path))
	return nil
}

// remotePathIsDirectory reports whether the path names an existing remote
// directory (the share root counts).
func remotePathIsDirectory(ctx context.Context, client *fileshare.Client, remotePath string) (bool, error) {
	if remotePath == "" {
		return true, nil
	}
	return client.DirectoryExists(ctx, remotePath)
}

func init() {
	raw := rawCopyCmdArgs{}

	copyCmd := &cobra.Command{
		Use:     "copy [source] [destination]",
		Aliases: []string{"cp"},
		Short:   copyCmdShortDescription,
		Long:    copyCmdLongDescription,
		Example: copyCmdExample,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("please pass two arguments: the source and the destination")
			}
			raw.src = args[0]
			raw.dst = args[1]
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cooked, err := raw.cook()
			if err != nil {
				glcm.Error("failed to parse user input due to error: " + err.Error())
			}
			err = cooked.process()
			if err != nil {
				glcm.Error("failed to perform copy command due to error: " + err.Error())
			}
			glcm.Exit(nil, common.EExitCode.Success())
		},
	}

	copyCmd.PersistentFlags().BoolVar(&raw.recursive, "recursive", false, "Look into sub-directories recursively when uploading from or downloading to a directory. The source directory's contents are mirrored into the destination directory.")
	rootCmd.AddCommand(copyCmd)
}
