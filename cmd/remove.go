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

	"github.com/spf13/cobra"

	"github.com/Iyemon-018/azfiles/common"
)

type rawRemoveCmdArgs struct {
	resourceToDelete string
	isDirectory      bool
}

func (raw rawRemoveCmdArgs) cook() (cookedRemoveCmdArgs, error) {
	if inferArgumentLocation(raw.resourceToDelete) != common.ELocation.File() {
		return cookedRemoveCmdArgs{}, errors.New("please provide a valid file share URL to remove")
	}
	return cookedRemoveCmdArgs{
		resourceURL: raw.resourceToDelete,
		isDirectory: raw.isDirectory,
	}, nil
}

type cookedRemoveCmdArgs struct {
	resourceURL string
	isDirectory bool
}

func (cooked cookedRemoveCmdArgs) process() error {
	client, parts, err := createShareClient(cooked.resourceURL)
	if err != nil {
		return err
	}
	if parts.Path == "" {
		return errors.New("removing a whole share is not supported; provide a file or directory path")
	}

	ctx := context.Background()

	var deleted bool
	if cooked.isDirectory {
		deleted, err = client.DeleteDirectoryIfExists(ctx, parts.Path)
	} else {
		deleted, err = client.DeleteFileIfExists(ctx, parts.Path)
	}
	if err != nil {
		return err
	}

	if deleted {
		glcm.Info(fmt.Sprintf("Successfully removed %q.", parts.Path))
	} else {
		glcm.Info(fmt.Sprintf("%q does not exist; nothing to remove.", parts.Path))
	}
	return nil
}

func init() {
	raw := rawRemoveCmdArgs{}

	removeCmd := &cobra.Command{
		Use:     "remove [resourceURL]",
		Aliases: []string{"rm"},
		Short:   removeCmdShortDescription,
		Long:    removeCmdLongDescription,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("please provide the resource URL as the only argument")
			}
			raw.resourceToDelete = args[0]
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cooked, err := raw.cook()
			if err != nil {
				glcm.Error("failed to parse user input due to error: " + err.Error())
			}
			err = cooked.process()
			if err != nil {
				glcm.Error("failed to perform remove command due to error: " + err.Error())
			}
			glcm.Exit(nil, common.EExitCode.Success())
		},
	}

	removeCmd.PersistentFlags().BoolVar(&raw.isDirectory, "directory", false, "Remove an (empty) directory instead of a file.")
	rootCmd.AddCommand(removeCmd)
}
