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
	"fmt"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Iyemon-018/azfiles/common"
)

var azfilesLogPathFolder string
var outputFormatRaw string
var logVerbosityRaw string
var azfilesOutputFormat common.OutputFormat
var azfilesLogVerbosity common.LogLevel
var azfilesCurrentJobID uuid.UUID

// every command resolves its credentials from this; populated once in
// PersistentPreRunE so the mirror logic never touches the environment itself
var azfilesConfig common.Config

// hold a pointer to the global lifecycle controller so that commands could output messages and exit properly
var glcm = common.GetLifecycleMgr()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: common.AzfilesVersion, // will enable the user to see the version info in the standard posix way: --version
	Use:     "azfiles",
	Short:   rootCmdShortDescription,
	Long:    rootCmdLongDescription,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := azfilesOutputFormat.Parse(outputFormatRaw)
		if err != nil {
			return err
		}
		glcm.SetOutputFormat(azfilesOutputFormat)

		err = azfilesLogVerbosity.Parse(logVerbosityRaw)
		if err != nil {
			return err
		}

		azfilesConfig = common.ResolveConfig()

		azfilesCurrentJobID = uuid.New()
		common.AzfilesCurrentJobLogger = common.NewJobLogger(azfilesCurrentJobID, azfilesLogVerbosity, azfilesLogPathFolder)
		common.AzfilesCurrentJobLogger.OpenLog()
		common.AzfilesCurrentJobLogger.Log(common.ELogLevel.Info(),
			fmt.Sprintf("Job %s started: %v", azfilesCurrentJobID, os.Args))

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(appPathFolder string) {
	azfilesLogPathFolder = common.GetEnvironmentVariable(common.EEnvironmentVariable.LogLocation())
	if azfilesLogPathFolder == "" {
		azfilesLogPathFolder = path.Join(appPathFolder, "logs")
	}
	if err := os.MkdirAll(azfilesLogPathFolder, os.ModeDir|os.ModePerm); err != nil && !os.IsExist(err) {
		azfilesLogPathFolder = appPathFolder
	}

	if err := rootCmd.Execute(); err != nil {
		glcm.Error(err.Error())
	} else {
		glcm.Exit(nil, common.EExitCode.Success())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormatRaw, "output-type", "text",
		"Format of the command's output. The choices include: text, json.")
	rootCmd.PersistentFlags().StringVar(&logVerbosityRaw, "log-level", "info",
		"Define the log verbosity for the log file, available levels: none, error, warning, info, debug.")
}
