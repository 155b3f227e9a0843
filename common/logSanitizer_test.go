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

func TestSanitizerRedactsSASSignature(t *testing.T) {
	a := assert.New(t)
	s := NewAzfilesLogSanitizer()

	msg := "GET https://acct.file.core.windows.net/share/file.txt?sv=2021-06-08&sig=secretsignaturevalue&se=2026-01-01"
	out := s.SanitizeLogMessage(msg)

	a.NotContains(out, "secretsignaturevalue")
	a.Contains(out, "-REDACTED-")
	a.Contains(out, "sv=2021-06-08", "non-sensitive query parameters survive")
}

func TestSanitizerRedactsHeaderStyleSecrets(t *testing.T) {
	a := assert.New(t)
	s := NewAzfilesLogSanitizer()

	out := s.SanitizeLogMessage("auth failed, token: abc123xyz, retrying")
	a.NotContains(out, "abc123xyz")

	out = s.SanitizeLogMessage("Signature=abcdef123456&other=1")
	a.NotContains(out, "abcdef123456")
}

func TestSanitizerLeavesCleanMessagesAlone(t *testing.T) {
	a := assert.New(t)
	s := NewAzfilesLogSanitizer()

	msg := "transfer of dir/file.txt completed in 120ms"
	a.Equal(msg, s.SanitizeLogMessage(msg))
}
