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

// ===================================== ROOT COMMAND ===================================== //
const rootCmdShortDescription = "Azfiles is a command line tool that moves data to and from Azure file shares."

const rootCmdLongDescription = `Azfiles is a command line tool that moves data to and from Azure file shares.

To report issues or to learn more about the tool, see the project repository.

The general format of the commands is: 'azfiles [command] [arguments] --[flag-name]=[flag-value]'.
`

// ===================================== COPY COMMAND ===================================== //
const copyCmdShortDescription = "Copies source data to a destination location"

const copyCmdLongDescription = `
Copies source data to a destination location. The supported directions are:
  - local <-> Azure Files (Share/directory/file URLs, SAS or account key)
  - Azure Files <-> Azure Files (server-side copy within a share)

Pass --recursive to mirror a whole directory tree. The mirror is additive:
directories (including empty ones) are created at the destination, files are
overwritten if they already exist, and nothing is ever deleted from the
destination.
`

const copyCmdExample = `Upload a single file:
  - azfiles copy "/path/to/file.txt" "https://[account].file.core.windows.net/[share]/[path/to/file.txt]?[SAS]"

Upload a whole directory tree:
  - azfiles copy "/path/to/dir" "https://[account].file.core.windows.net/[share]/[path/to/dir]?[SAS]" --recursive

Download a whole directory tree:
  - azfiles copy "https://[account].file.core.windows.net/[share]/[path/to/dir]?[SAS]" "/path/to/dir" --recursive

Copy a single file within a share (server-side):
  - azfiles copy "https://[account].file.core.windows.net/[share]/[src.txt]?[SAS]" "https://[account].file.core.windows.net/[share]/[dst.txt]?[SAS]"
`

// ===================================== LIST COMMAND ===================================== //
const listCmdShortDescription = "Lists the entities in a given remote directory"

const listCmdLongDescription = `Lists the direct children of a file share directory. Only Azure Files URLs are supported.`

const listCmdExample = "azfiles list [shareURL] --output-type json"

// ===================================== MAKE COMMAND ===================================== //
const makeCmdShortDescription = "Create a share"

const makeCmdLongDescription = `Create a file share represented by the given resource URL. Succeeds quietly when the share already exists.`

const makeCmdExample = "azfiles make \"https://[account].file.core.windows.net/[share]?[SAS]\" --quota-gb 10"

// ===================================== MKDIR COMMAND ===================================== //
const mkdirCmdShortDescription = "Create a directory inside a share"

const mkdirCmdLongDescription = `Create a directory (and any missing parents) inside an existing file share. Succeeds quietly when the directory already exists.`

// ===================================== REMOVE COMMAND ===================================== //
const removeCmdShortDescription = "Delete files or empty directories from a share"

const removeCmdLongDescription = `Delete a file, or an empty directory, from a file share. Deleting something that does not exist is reported, not treated as an error.`

// ===================================== ENV COMMAND ===================================== //
const envCmdShortDescription = "Shows the environment variables that you can use to configure the behavior of Azfiles."

const envCmdLongDescription = `Shows the environment variables that you can use to configure the behavior of Azfiles.`
