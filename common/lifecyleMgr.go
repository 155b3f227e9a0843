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
	"fmt"
	"os"
	"sync"
	"time"
)

// create a public interface so that consumers outside of this package can refer
// to the lifecycle manager but would not be able to instantiate one
type LifecycleMgr interface {
	Info(msg string)                         // simple print, allowed to float up
	Warn(msg string)                         // simple print, with a warning prefix
	Error(msg string)                        // indicate fatal error, exit right after
	Output(builder OutputBuilder)            // print output for list and friends
	Exit(builder OutputBuilder, code ExitCode)
	SetOutputFormat(format OutputFormat)
	GetEnvironmentVariable(env EnvironmentVariable) string
}

// OutputBuilder is given the output format in use and returns the appropriate string.
type OutputBuilder func(OutputFormat) string

var lcm LifecycleMgr = &lifecycleMgr{
	outputFormat: EOutputFormat.Text(),
}

func GetLifecycleMgr() LifecycleMgr {
	return lcm
}

type lifecycleMgr struct {
	mu           sync.Mutex
	outputFormat OutputFormat
}

func (mgr *lifecycleMgr) SetOutputFormat(format OutputFormat) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.outputFormat = format
}

func (mgr *lifecycleMgr) format() OutputFormat {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.outputFormat
}

func (mgr *lifecycleMgr) Info(msg string) {
	if mgr.format() == EOutputFormat.Json() {
		fmt.Println(newJSONOutputTemplate(eOutputMessageType.Info(), msg))
		return
	}
	fmt.Println(msg)
}

func (mgr *lifecycleMgr) Warn(msg string) {
	if mgr.format() == EOutputFormat.Json() {
		fmt.Println(newJSONOutputTemplate(eOutputMessageType.Warn(), msg))
		return
	}
	fmt.Println("WARN: " + msg)
}

func (mgr *lifecycleMgr) Error(msg string) {
	if mgr.format() == EOutputFormat.Json() {
		fmt.Println(newJSONOutputTemplate(eOutputMessageType.Error(), msg))
	} else {
		fmt.Fprintln(os.Stderr, "ERROR: "+msg)
	}

	if AzfilesCurrentJobLogger != nil {
		AzfilesCurrentJobLogger.Log(ELogLevel.Error(), msg)
		AzfilesCurrentJobLogger.CloseLog()
	}
	os.Exit(int(EExitCode.Error()))
}

func (mgr *lifecycleMgr) Output(builder OutputBuilder) {
	if builder == nil {
		return
	}
	fmt.Println(builder(mgr.format()))
}

func (mgr *lifecycleMgr) Exit(builder OutputBuilder, code ExitCode) {
	if builder != nil {
		fmt.Println(builder(mgr.format()))
	}

	if AzfilesCurrentJobLogger != nil {
		AzfilesCurrentJobLogger.CloseLog()
	}
	os.Exit(int(code))
}

func (mgr *lifecycleMgr) GetEnvironmentVariable(env EnvironmentVariable) string {
	return GetEnvironmentVariable(env)
}

// //////////////////////////////////////////////////////////////////////////////

var eOutputMessageType = outputMessageType(0)

// outputMessageType defines the nature of the output, ex: informational message or error
type outputMessageType uint8

func (outputMessageType) Info() outputMessageType  { return outputMessageType(0) }
func (outputMessageType) Warn() outputMessageType  { return outputMessageType(1) }
func (outputMessageType) Error() outputMessageType { return outputMessageType(2) }
func (outputMessageType) List() outputMessageType  { return outputMessageType(3) }

func (t outputMessageType) String() string {
	switch t {
	case eOutputMessageType.Warn():
		return "Warn"
	case eOutputMessageType.Error():
		return "Error"
	case eOutputMessageType.List():
		return "List"
	default:
		return "Info"
	}
}

func newJSONOutputTemplate(msgType outputMessageType, content string) string {
	return GetJsonStringFromTemplate(jsonOutputTemplate{
		TimeStamp:      time.Now(),
		MessageType:    msgType.String(),
		MessageContent: content,
	})
}

// defines the general output template when the format is set to json
type jsonOutputTemplate struct {
	TimeStamp      time.Time
	MessageType    string
	MessageContent string // a simple string for INFO and ERROR, a serialized JSON for LIST
}
