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

package v1alpha1

// AzureBlobStorageAccessTier selects the access tier for uploaded blobs.
// +kubebuilder:validation:Enum=Hot;Cool;Archive
type AzureBlobStorageAccessTier string

const (
	AzureBlobStorageAccessTierHot     AzureBlobStorageAccessTier = "Hot"
	AzureBlobStorageAccessTierCool    AzureBlobStorageAccessTier = "Cool"
	AzureBlobStorageAccessTierArchive AzureBlobStorageAccessTier = "Archive"
)

// AzureBlobStorageSharedKey authorizes with a storage account key.
type AzureBlobStorageSharedKey struct {
	// Container is the name of the container to use. Sftpgo does not create
	// this automatically, so make sure it exists before using it here.
	Container string `json:"container"`

	AccountName string `json:"accountName"`

	AccountKey string `json:"accountKey"`
}

// AzureBlobStorageAuthorization holds one of the supported authorization
// mechanisms for Azure Blob Storage.
type AzureBlobStorageAuthorization struct {
	// +optional
	SharedKey *AzureBlobStorageSharedKey `json:"sharedKey,omitempty"`

	// +optional
	SharedAccessSignatureURL string `json:"sharedAccessSignatureUrl,omitempty"`
}

// FileSystemLocal stores files on the local filesystem of the server.
type FileSystemLocal struct {
	// +optional
	ReadBufferSize *int32 `json:"readBufferSize,omitempty"`
	// +optional
	WriteBufferSize *int32 `json:"writeBufferSize,omitempty"`
}

// FileSystemAzureBlobStorage stores files in an Azure Blob Storage container.
type FileSystemAzureBlobStorage struct {
	Authorization AzureBlobStorageAuthorization `json:"authorization"`

	// Endpoint is optional. Default is "blob.core.windows.net". If you use
	// the emulator the endpoint must include the protocol, for example
	// "http://127.0.0.1:10000".
	// +optional
	Endpoint string `json:"endpoint,omitempty"`

	// UploadPartSize is the buffer size (in MB) to use for multipart uploads.
	// If this value is not set, the default value (5MB) will be used.
	// +optional
	UploadPartSize *int32 `json:"uploadPartSize,omitempty"`

	// UploadConcurrency is the number of parts to upload in parallel. If this
	// value is not set, the default value (5) will be used.
	// +optional
	UploadConcurrency *int32 `json:"uploadConcurrency,omitempty"`

	// DownloadPartSize is the buffer size (in MB) to use for multipart
	// downloads. If this value is not set, the default value (5MB) will be
	// used.
	// +optional
	DownloadPartSize *int32 `json:"downloadPartSize,omitempty"`

	// DownloadConcurrency is the number of parts to download in parallel. If
	// this value is not set, the default value (5) will be used.
	// +optional
	DownloadConcurrency *int32 `json:"downloadConcurrency,omitempty"`

	// +optional
	AccessTier *AzureBlobStorageAccessTier `json:"accessTier,omitempty"`

	// KeyPrefix is similar to a chroot directory for a local filesystem. If
	// specified the user will only see contents that starts with this prefix
	// and so you can restrict access to a specific virtual folder. The
	// prefix, if not empty, must not start with "/" and must end with "/".
	// If empty the whole container contents will be available.
	// +optional
	KeyPrefix string `json:"keyPrefix,omitempty"`

	// +optional
	UseEmulator *bool `json:"useEmulator,omitempty"`
}

// FileSystem describes where a user or virtual folder stores its files.
// At most one of the members may be set; an empty value means the local
// filesystem with default buffer sizes.
type FileSystem struct {
	// +optional
	Local *FileSystemLocal `json:"local,omitempty"`

	// +optional
	AzureBlobStorage *FileSystemAzureBlobStorage `json:"azureBlobStorage,omitempty"`
}
