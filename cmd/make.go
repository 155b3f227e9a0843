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
	"github.com/Iyemon-018/azfiles/fileshare"
)

// holds raw input from user
type rawMakeCmdArgs struct {
	resourceToCreate string
	quotaGB          uint32
}

// parse raw input
func (raw rawMakeCmdArgs) cook() (cookedMakeCmdArgs, error) {
	if inferArgumentLocation(raw.resourceToCreate) != common.ELocation.File() {
		return cookedMakeCmdArgs{}, errors.New("please provide a valid file share URL")
	}

	parts, err := fileshare.ParseResource(raw.resourceToCreate)
	if err != nil {
		return cookedMakeCmdArgs{}, err
	}
	if parts.Path != "" {
		return cookedMakeCmdArgs{}, errors.New("please provide a top-level share URL, without a directory or file path")
	}

	return cookedMakeCmdArgs{
		resourceURL: raw.resourceToCreate,
		quotaGB:     int32(raw.quotaGB),
	}, nil
}

// holds processed/actionable args
type cookedMakeCmdArgs struct {
	resourceURL string
	quotaGB     int32 // quota is in GB
}

func (cooked cookedMakeCmdArgs) process() error {
	client, _, err := createShareClient(cooked.resourceURL)
	if err != nil {
		return err
	}

	created, err := client.EnsureShare(context.Background(), cooked.quotaGB)
	if err != nil {
		return err
	}

	if created {
		glcm.Info(fmt.Sprintf("Successfully created the share %q.", client.ShareName()))
	} else {
		glcm.Info(fmt.Sprintf("The share %q already exists.", client.ShareName()))
	}
	return nil
}

func init() {
	raw := rawMakeCmdArgs{}

	makeCmd := &cobra.Command{
		Use:     "make [resourceURL]",
		Short:   makeCmdShortDescription,
		Long:    makeCmdLongDescription,
		Example: makeCmdExample,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("please provide the resource URL as the only argument")
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
				glcm.Error("failed to perform make command due to error: " + err.Error())
			}
			glcm.Exit(nil, common.EExitCode.Success())
		},
	}

	makeCmd.PersistentFlags().Uint32Var(&raw.quotaGB, "quota-gb", 0, "Specifies the maximum size of the share in gigabytes (GiB), 0 means you accept the file service's default quota.")
	rootCmd.AddCommand(makeCmd)
}
