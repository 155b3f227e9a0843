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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelParse(t *testing.T) {
	a := assert.New(t)

	var ll LogLevel
	a.NoError(ll.Parse("info"))
	a.Equal(ELogLevel.Info(), ll)

	a.NoError(ll.Parse("DEBUG")) // case insensitive
	a.Equal(ELogLevel.Debug(), ll)

	a.Error(ll.Parse("chatty"))
}

func TestLogLevelString(t *testing.T) {
	a := assert.New(t)

	a.Equal("Info", ELogLevel.Info().String())
	a.Equal("Warning", ELogLevel.Warning().String())
}

func TestOutputFormatParse(t *testing.T) {
	a := assert.New(t)

	var of OutputFormat
	a.NoError(of.Parse("json"))
	a.Equal(EOutputFormat.Json(), of)

	a.NoError(of.Parse("text"))
	a.Equal(EOutputFormat.Text(), of)

	a.Error(of.Parse("xml"))
}

func TestLocationPredicates(t *testing.T) {
	a := assert.New(t)

	a.True(ELocation.File().IsRemote())
	a.False(ELocation.File().IsLocal())
	a.True(ELocation.Local().IsLocal())
	a.False(ELocation.Local().IsRemote())
	a.False(ELocation.Unknown().IsRemote())
	a.False(ELocation.Unknown().IsLocal())
}

func TestIff(t *testing.T) {
	a := assert.New(t)

	a.Equal("yes", Iff(true, "yes", "no"))
	a.Equal(2, Iff(false, 1, 2))
}
