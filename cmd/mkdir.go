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

type rawMkdirCmdArgs struct {
	resourceToCreate string
}

func (raw rawMkdirCmdArgs) cook() (cookedMkdirCmdArgs, error) {
	if inferArgumentLocation(raw.resourceToCreate) != common.ELocation.File() {
		return cookedMkdirCmdArgs{}, errors.New("please provide a valid file share directory URL")
	}
	return cookedMkdirCmdArgs{resourceURL: raw.resourceToCreate}, nil
}

type cookedMkdirCmdArgs struct {
	resourceURL string
}

func (cooked cookedMkdirCmdArgs) process() error {
	client, parts, err := createShareClient(cooked.resourceURL)
	if err != nil {
		return err
	}
	if parts.Path == "" {
		return errors.New("the URL points at the share root; provide a directory path to create")
	}

	ctx := context.Background()

	// an explicit "share not found" beats the service's ParentNotFound error
	shareExists, err := client.ShareExists(ctx)
	if err != nil {
		return err
	}
	if !shareExists {
		return fmt.Errorf("the share %q does not exist; create it first with the make command", client.ShareName())
	}

	if err := client.EnsureDirectory(ctx, parts.Path); err != nil {
		return err
	}

	glcm.Info(fmt.Sprintf("Successfully created directory %q in share %q.", parts.Path, client.ShareName()))
	return nil
}

func init() {
	raw := rawMkdirCmdArgs{}

	mkdirCmd := &cobra.Command{
		Use:   "mkdir [directoryURL]",
		Short: mkdirCmdShortDescription,
		Long:  mkdirCmdLongDescription,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("please provide the directory URL as the only argument")
			}
			raw.resourceToCreate = args[0]
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cooked, err := raw.cook()
			if err != nil {
				glcm.Error("failed to parse user input due to error: " + err.Error())
			}
			err = cooked.process()
			if err != nil {
				glcm.Error("failed to perform mkdir command due to error: " + err.Error())
			}
			glcm.Exit(nil, common.EExitCode.Success())
		},
	}

	rootCmd.AddCommand(mkdirCmd)
}
