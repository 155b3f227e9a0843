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

import (
	"fmt"

	"github.com/Iyemon-018/azfiles/common"
	"github.com/Iyemon-018/azfiles/fileshare"
)

// createShareClient turns a raw file share URL into a ready-to-use share
// client, with credentials resolved from the ambient config, plus the
// share-relative path the URL pointed at.
func createShareClient(rawURL string) (*fileshare.Client, fileshare.ResourceParts, error) {
	parts, err := fileshare.ParseResource(rawURL)
	if err != nil {
		return nil, fileshare.ResourceParts{}, err
	}

	credInfo, err := azfilesConfig.GetCredentialInfo(rawURL)
	if err != nil {
		return nil, fileshare.ResourceParts{}, err
	}
	logCredentialType(credInfo.CredentialType)

	serviceClient, err := common.CreateFileServiceClient(parts.ServiceURL, credInfo, common.NewClientOptions())
	if err != nil {
		return nil, fileshare.ResourceParts{}, fmt.Errorf("cannot create file service client: %w", err)
	}

	return fileshare.NewClient(serviceClient, parts.ShareName), parts, nil
}

func logCredentialType(ct common.CredentialType) {
	if common.AzfilesCurrentJobLogger != nil {
		common.AzfilesCurrentJobLogger.Log(common.ELogLevel.Debug(),
			fmt.Sprintf("Authenticating with credential type %v", ct))
	}
}
