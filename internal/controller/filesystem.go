/*
Copyright 2023 The sftpgo-server-operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"strings"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-server-operator/internal/sftpgo"
	"github.com/zlepper/sftpgo-server-operator/util"
)

// calculateFileSystem maps a declarative filesystem block to the management
// API's wire shape. Users and folders share these rules. In-band secrets are
// marked plain so the server encrypts them on first store.
func calculateFileSystem(fs *sftpgov1alpha1.FileSystem) (sftpgo.FileSystem, error) {
	if fs == nil || (fs.Local == nil && fs.AzureBlobStorage == nil) {
		return sftpgo.FileSystem{
			Provider: sftpgo.FileSystemProviderLocal,
			OsConfig: &sftpgo.OsConfig{},
		}, nil
	}

	if fs.Local != nil && fs.AzureBlobStorage != nil {
		return sftpgo.FileSystem{}, &UserInputError{Reason: "filesystem must set only one of local and azureBlobStorage"}
	}

	if fs.Local != nil {
		return sftpgo.FileSystem{
			Provider: sftpgo.FileSystemProviderLocal,
			OsConfig: &sftpgo.OsConfig{
				ReadBufferSize:  util.OrDefault(fs.Local.ReadBufferSize, 0),
				WriteBufferSize: util.OrDefault(fs.Local.WriteBufferSize, 0),
			},
		}, nil
	}

	blob := fs.AzureBlobStorage

	config := &sftpgo.AzBlobConfig{
		Endpoint:            blob.Endpoint,
		UploadPartSize:      util.OrDefault(blob.UploadPartSize, 0),
		UploadConcurrency:   util.OrDefault(blob.UploadConcurrency, 0),
		DownloadPartSize:    util.OrDefault(blob.DownloadPartSize, 0),
		DownloadConcurrency: util.OrDefault(blob.DownloadConcurrency, 0),
		KeyPrefix:           blob.KeyPrefix,
		UseEmulator:         util.OrDefault(blob.UseEmulator, false),
	}

	if blob.AccessTier != nil {
		config.AccessTier = strings.ToLower(string(*blob.AccessTier))
	}

	auth := blob.Authorization

	switch {
	case auth.SharedKey != nil && auth.SharedAccessSignatureURL != "":
		return sftpgo.FileSystem{}, &UserInputError{Reason: "azureBlobStorage authorization must set only one of sharedKey and sharedAccessSignatureUrl"}
	case auth.SharedKey != nil:
		config.Container = auth.SharedKey.Container
		config.AccountName = auth.SharedKey.AccountName
		config.AccountKey = sftpgo.PlainSecret(auth.SharedKey.AccountKey)
	case auth.SharedAccessSignatureURL != "":
		config.SasURL = sftpgo.PlainSecret(auth.SharedAccessSignatureURL)
	default:
		return sftpgo.FileSystem{}, &UserInputError{Reason: "azureBlobStorage authorization must set one of sharedKey and sharedAccessSignatureUrl"}
	}

	return sftpgo.FileSystem{
		Provider:     sftpgo.FileSystemProviderAzureBlobStorage,
		AzBlobConfig: config,
	}, nil
}
