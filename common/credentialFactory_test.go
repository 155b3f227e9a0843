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

func TestGetCredentialInfoPrefersSASInURL(t *testing.T) {
	a := assert.New(t)

	// even with other credentials configured, a SAS in the URL wins
	cfg := Config{AccountName: "acct", AccountKey: "key", ConnectionString: "conn"}

	info, err := cfg.GetCredentialInfo("https://acct.file.core.windows.net/share?sv=x&sig=fake")
	a.NoError(err)
	a.Equal(ECredentialType.Anonymous(), info.CredentialType)
}

func TestGetCredentialInfoConnectionString(t *testing.T) {
	a := assert.New(t)

	cfg := Config{ConnectionString: "DefaultEndpointsProtocol=https;AccountName=acct;AccountKey=fake;EndpointSuffix=core.windows.net"}

	info, err := cfg.GetCredentialInfo("https://acct.file.core.windows.net/share")
	a.NoError(err)
	a.Equal(ECredentialType.ConnectionString(), info.CredentialType)
	a.Equal(cfg.ConnectionString, info.ConnectionString)
}

func TestGetCredentialInfoSharedKey(t *testing.T) {
	a := assert.New(t)

	cfg := Config{AccountName: "acct", AccountKey: "fakekey"}

	info, err := cfg.GetCredentialInfo("https://acct.file.core.windows.net/share")
	a.NoError(err)
	a.Equal(ECredentialType.SharedKey(), info.CredentialType)
	a.Equal("acct", info.AccountName)
	a.Equal("fakekey", info.AccountKey)
}

func TestGetCredentialInfoRequiresSomeCredential(t *testing.T) {
	a := assert.New(t)

	_, err := Config{}.GetCredentialInfo("https://acct.file.core.windows.net/share")
	a.Error(err)
	a.Contains(err.Error(), "AZFILES_CONNECTION_STRING")
}
