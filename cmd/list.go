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
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iyemon-018/azfiles/common"
)

type rawListCmdArgs struct {
	sourcePath string
}

func (raw rawListCmdArgs) cook() (cookedListCmdArgs, error) {
	if inferArgumentLocation(raw.sourcePath) != common.ELocation.File() {
		return cookedListCmdArgs{}, errors.New("please provide a valid file share URL to list")
	}
	return cookedListCmdArgs{resourceURL: raw.sourcePath}, nil
}

type cookedListCmdArgs struct {
	resourceURL string
}

// listEntryOutput is the JSON shape of one listed child.
type listEntryOutput struct {
	Name          string
	EntityType    string
	ContentLength int64
}

func (cooked cookedListCmdArgs) process() error {
	client, parts, err := createShareClient(cooked.resourceURL)
	if err != nil {
		return err
	}

	entries, err := client.ListChildren(context.Background(), parts.Path)
	if err != nil {
		return err
	}

	glcm.Output(func(format common.OutputFormat) string {
		if format == common.EOutputFormat.Json() {
			out := make([]listEntryOutput, 0, len(entries))
			for _, entry := range entries {
				out = append(out, listEntryOutput{
					Name:          entry.Name,
					EntityType:    entry.EntityType.String(),
					ContentLength: entry.ContentLength,
				})
			}
			return common.GetJsonStringFromTemplate(out)
		}

		var builder strings.Builder
		for _, entry := range entries {
			if entry.IsDirectory() {
				fmt.Fprintf(&builder, "%s/; Directory\n", entry.Name)
			} else {
				fmt.Fprintf(&builder, "%s; Content Length: %d\n", entry.Name, entry.ContentLength)
			}
		}
		fmt.Fprintf(&builder, "%d item(s) in total", len(entries))
		return builder.String()
	})
	return nil
}

func init() {
	raw := rawListCmdArgs{}

	listCmd := &cobra.Command{
		Use:     "list [resourceURL]",
		Aliases: []string{"ls"},
		Short:   listCmdShortDescription,
		Long:    listCmdLongDescription,
		Example: listCmdExample,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("please provide the resource URL as the only argument")
			}
			raw.sourcePath = args[0]
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cooked, err := raw.cook()
			if err != nil {
				glcm.Error("failed to parse user input due to error: " + err.Error())
			}
			err = cooked.process()
			if err != nil {
				glcm.Error("failed to perform list command due to error: " + err.Error())
			}
			glcm.Exit(nil, common.EExitCode.Success())
		},
	}

	rootCmd.AddCommand(listCmd)
}
