// Copyright © Microsoft <wastore@microsoft.com>
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
	"regexp"
	"strings"
)

type LogSanitizer interface {
	SanitizeLogMessage(raw string) string
}

// azfilesLogSanitizer performs string-replacement based log redaction.
// This serves as a backstop, to help make sure that secrets don't get logged.
// SAS tokens live in URLs, and URLs end up inside HTTP errors, so filtering at
// the point of logging is more maintainable than chasing every site that may
// log such an error.
type azfilesLogSanitizer struct {
}

func NewAzfilesLogSanitizer() LogSanitizer {
	return &azfilesLogSanitizer{}
}

var sensitiveQueryStringKeys = []string{
	"sig",
	"signature",
	"token",
	"credential",
}

// SanitizeLogMessage removes credentials and credential-like strings that are
// expected to exist in material logged by this application. It does not remove
// whole headers; signatures of the type found in SAS tokens are what matter.
func (s *azfilesLogSanitizer) SanitizeLogMessage(msg string) string {
	lowerMsg := strings.ToLower(msg)

	for _, key := range sensitiveQueryStringKeys {
		// take a quick look, using contains, and then get fancy only if we
		// find something in the quick look
		if strings.Contains(lowerMsg, key) {
			msg = s.redact(msg, key) // must redact from the real (original case) msg, not lowerMsg
		}
	}

	return msg
}

func (s *azfilesLogSanitizer) redact(msg, key string) string {
	const redacted = "-REDACTED-"

	return sensitiveRegexMap[key].ReplaceAllString(msg, "$1"+redacted)
}

var sensitiveRegexMap = make(map[string]*regexp.Regexp)

func init() {
	for _, key := range sensitiveQueryStringKeys {
		// We don't care what's before the key (in a query string it will always
		// be ? or &, but that's not the case in, say, an auth header). We ASSUME
		// the value to be redacted never contains a &.
		sensitiveRegexMap[key] = regexp.MustCompile("(?i)(?P<key>" + key + "[ \t]*[:=][ \t]*)(?P<value>[^& ,;\t\n\r]+)")
	}
}
