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
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/pkg/errors"
)

// Config carries everything needed to construct a file service client.
// It is resolved once at startup and passed down explicitly; nothing below
// the command layer reads environment variables.
type Config struct {
	AccountName      string
	AccountKey       string
	ConnectionString string
	AutoLoginType    string
}

// ResolveConfig builds a Config from the process environment.
func ResolveConfig() Config {
	return Config{
		AccountName:      GetEnvironmentVariable(EEnvironmentVariable.AccountName()),
		AccountKey:       GetEnvironmentVariable(EEnvironmentVariable.AccountKey()),
		ConnectionString: GetEnvironmentVariable(EEnvironmentVariable.ConnectionString()),
		AutoLoginType:    GetEnvironmentVariable(EEnvironmentVariable.AutoLoginType()),
	}
}

// CredentialInfo describes how to authenticate against the file service.
type CredentialInfo struct {
	CredentialType   CredentialType
	AccountName      string
	AccountKey       string
	ConnectionString string
	TokenCredential  azcore.TokenCredential
}

// GetCredentialInfo decides the credential type from the config and the raw
// resource URL. A SAS token in the URL wins, since the service ignores other
// auth when a signature is present.
func (cfg Config) GetCredentialInfo(rawURL string) (CredentialInfo, error) {
	if strings.Contains(rawURL, "?sig=") || strings.Contains(rawURL, "&sig=") {
		return CredentialInfo{CredentialType: ECredentialType.Anonymous()}, nil
	}

	if cfg.ConnectionString != "" {
		return CredentialInfo{
			CredentialType:   ECredentialType.ConnectionString(),
			ConnectionString: cfg.ConnectionString,
		}, nil
	}

	if cfg.AccountName != "" && cfg.AccountKey != "" {
		return CredentialInfo{
			CredentialType: ECredentialType.SharedKey(),
			AccountName:    cfg.AccountName,
			AccountKey:     cfg.AccountKey,
		}, nil
	}

	if cfg.AutoLoginType != "" {
		tc, err := GetTokenCredential(cfg)
		if err != nil {
			return CredentialInfo{}, err
		}
		return CredentialInfo{
			CredentialType:  ECredentialType.OAuthToken(),
			TokenCredential: tc,
		}, nil
	}

	return CredentialInfo{}, errors.New(
		"no credential found: set " + EEnvironmentVariable.ConnectionString().Name +
			", or " + EEnvironmentVariable.AccountName().Name + " and " + EEnvironmentVariable.AccountKey().Name +
			", or " + EEnvironmentVariable.AutoLoginType().Name + ", or include a SAS token in the URL")
}

// GetTokenCredential builds the AAD token credential named by AutoLoginType.
func GetTokenCredential(cfg Config) (azcore.TokenCredential, error) {
	switch strings.ToUpper(cfg.AutoLoginType) {
	case "DEVICE":
		cred, err := azidentity.NewDeviceCodeCredential(nil)
		return cred, errors.Wrap(err, "device code login failed")
	case "MSI":
		cred, err := azidentity.NewManagedIdentityCredential(nil)
		return cred, errors.Wrap(err, "managed identity login failed")
	case "AZCLI":
		cred, err := azidentity.NewAzureCLICredential(nil)
		return cred, errors.Wrap(err, "azure CLI login failed")
	default:
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		return cred, errors.Wrap(err, "default azure credential failed")
	}
}
