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

import "os"

type EnvironmentVariable struct {
	Name         string
	DefaultValue string
	Description  string
}

// This array needs to be updated when a new public environment variable is added
var VisibleEnvironmentVariables = []EnvironmentVariable{
	EEnvironmentVariable.AccountName(),
	EEnvironmentVariable.AccountKey(),
	EEnvironmentVariable.ConnectionString(),
	EEnvironmentVariable.AutoLoginType(),
	EEnvironmentVariable.LogLocation(),
}

var EEnvironmentVariable = EnvironmentVariable{}

func (EnvironmentVariable) AccountName() EnvironmentVariable {
	return EnvironmentVariable{
		Name:        "AZFILES_ACCOUNT_NAME",
		Description: "The storage account name, used together with AZFILES_ACCOUNT_KEY for SharedKey authentication.",
	}
}

func (EnvironmentVariable) AccountKey() EnvironmentVariable {
	return EnvironmentVariable{
		Name:        "AZFILES_ACCOUNT_KEY",
		Description: "The storage account key, used together with AZFILES_ACCOUNT_NAME for SharedKey authentication.",
	}
}

func (EnvironmentVariable) ConnectionString() EnvironmentVariable {
	return EnvironmentVariable{
		Name:        "AZFILES_CONNECTION_STRING",
		Description: "A storage account connection string. Takes precedence over account name/key when set.",
	}
}

func (EnvironmentVariable) AutoLoginType() EnvironmentVariable {
	return EnvironmentVariable{
		Name:        "AZFILES_AUTO_LOGIN_TYPE",
		Description: "Set to DEVICE, MSI or AZCLI to authenticate with Azure Active Directory instead of an account key.",
	}
}

func (EnvironmentVariable) LogLocation() EnvironmentVariable {
	return EnvironmentVariable{
		Name:        "AZFILES_LOG_LOCATION",
		Description: "Overrides where the log files are stored, to avoid filling up a disk.",
	}
}

// GetEnvironmentVariable returns the value of the environment variable, or its default if unset.
func GetEnvironmentVariable(env EnvironmentVariable) string {
	value := os.Getenv(env.Name)
	if value == "" {
		return env.DefaultValue
	}
	return value
}
