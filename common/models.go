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

package common

import (
	"reflect"

	"github.com/JeffreyRichter/enum/enum"
)

// //////////////////////////////////////////////////////////////////////////////

var EExitCode = ExitCode(0)

type ExitCode uint32

func (ExitCode) Success() ExitCode { return ExitCode(0) }
func (ExitCode) Error() ExitCode   { return ExitCode(1) }

// //////////////////////////////////////////////////////////////////////////////

var ELogLevel = LogLevel(0)

// LogLevel controls which messages make it into the job log.
type LogLevel uint8

func (LogLevel) None() LogLevel    { return LogLevel(0) }
func (LogLevel) Error() LogLevel   { return LogLevel(1) }
func (LogLevel) Warning() LogLevel { return LogLevel(2) }
func (LogLevel) Info() LogLevel    { return LogLevel(3) }
func (LogLevel) Debug() LogLevel   { return LogLevel(4) }

func (ll *LogLevel) Parse(s string) error {
	val, err := enum.ParseInt(reflect.TypeOf(ll), s, true, true)
	if err == nil {
		*ll = val.(LogLevel)
	}
	return err
}

func (ll LogLevel) String() string {
	return enum.StringInt(ll, reflect.TypeOf(ll))
}

// //////////////////////////////////////////////////////////////////////////////

var EOutputFormat = OutputFormat(0)

type OutputFormat uint32

func (OutputFormat) Text() OutputFormat { return OutputFormat(0) }
func (OutputFormat) Json() OutputFormat { return OutputFormat(1) }

func (of *OutputFormat) Parse(s string) error {
	val, err := enum.ParseInt(reflect.TypeOf(of), s, true, true)
	if err == nil {
		*of = val.(OutputFormat)
	}
	return err
}

func (of OutputFormat) String() string {
	return enum.StringInt(of, reflect.TypeOf(of))
}

// //////////////////////////////////////////////////////////////////////////////

var EEntityType = EntityType(0)

type EntityType uint8

func (EntityType) File() EntityType   { return EntityType(0) }
func (EntityType) Folder() EntityType { return EntityType(1) }

func (e EntityType) String() string {
	return enum.StringInt(e, reflect.TypeOf(e))
}

// //////////////////////////////////////////////////////////////////////////////

var ELocation = Location(0)

// Location indicates which kind of resource a command argument points to.
type Location uint8

func (Location) Unknown() Location { return Location(0) }
func (Location) Local() Location   { return Location(1) }
func (Location) File() Location    { return Location(2) }

func (l Location) IsRemote() bool {
	return l == ELocation.File()
}

func (l Location) IsLocal() bool {
	return l == ELocation.Local()
}

func (l Location) String() string {
	return enum.StringInt(l, reflect.TypeOf(l))
}

// //////////////////////////////////////////////////////////////////////////////

var ECredentialType = CredentialType(0)

// CredentialType selects how the file service client authenticates.
type CredentialType uint8

func (CredentialType) Unknown() CredentialType          { return CredentialType(0) }
func (CredentialType) Anonymous() CredentialType        { return CredentialType(1) } // SAS carried in the URL, or public
func (CredentialType) SharedKey() CredentialType        { return CredentialType(2) }
func (CredentialType) ConnectionString() CredentialType { return CredentialType(3) }
func (CredentialType) OAuthToken() CredentialType       { return CredentialType(4) }

func (ct CredentialType) String() string {
	return enum.StringInt(ct, reflect.TypeOf(ct))
}

// captures the common logic of exiting if there's an expected error
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

func Iff[T any](test bool, trueVal, falseVal T) T {
	if test {
		return trueVal
	}
	return falseVal
}
