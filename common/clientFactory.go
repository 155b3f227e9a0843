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

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/service"
)

// NewClientOptions returns the azcore options shared by every client we
// create: our user agent and the proxy-aware HTTP transport.
func NewClientOptions() azcore.ClientOptions {
	return azcore.ClientOptions{
		Telemetry: policy.TelemetryOptions{ApplicationID: UserAgent},
		Transport: NewAzfilesHTTPClient(),
	}
}

// CreateFileServiceClient creates a file service client with the credentials
// specified by credInfo. serviceURL is ignored for connection strings, which
// carry their own endpoint.
func CreateFileServiceClient(serviceURL string, credInfo CredentialInfo, options azcore.ClientOptions) (*service.Client, error) {
	clientOptions := &service.ClientOptions{ClientOptions: options}

	switch credInfo.CredentialType {
	case ECredentialType.ConnectionString():
		return service.NewClientFromConnectionString(credInfo.ConnectionString, clientOptions)
	case ECredentialType.SharedKey():
		sharedKey, err := service.NewSharedKeyCredential(credInfo.AccountName, credInfo.AccountKey)
		if err != nil {
			return nil, fmt.Errorf("unable to get shared key credential due to reason (%s)", err.Error())
		}
		return service.NewClientWithSharedKeyCredential(serviceURL, sharedKey, clientOptions)
	case ECredentialType.OAuthToken():
		return service.NewClient(serviceURL, credInfo.TokenCredential, clientOptions)
	case ECredentialType.Anonymous():
		return service.NewClientWithNoCredential(serviceURL, clientOptions)
	default:
		return nil, fmt.Errorf("invalid state, credential type %v is not supported", credInfo.CredentialType)
	}
}
