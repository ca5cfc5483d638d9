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

package sftpgo

// FileSystemProvider is the storage backend discriminator.
type FileSystemProvider int

const (
	FileSystemProviderLocal              FileSystemProvider = 0
	FileSystemProviderS3                 FileSystemProvider = 1
	FileSystemProviderGoogleCloudStorage FileSystemProvider = 2
	FileSystemProviderAzureBlobStorage   FileSystemProvider = 3
	FileSystemProviderLocalEncrypted     FileSystemProvider = 4
	FileSystemProviderSftp               FileSystemProvider = 5
	FileSystemProviderHTTP               FileSystemProvider = 6
)

// SecretStatus tells the server how a secret payload is protected.
type SecretStatus string

const (
	// SecretStatusPlain marks a plaintext payload the server encrypts on
	// first store.
	SecretStatusPlain SecretStatus = "Plain"

	// SecretStatusRedacted is what the server reports back in place of
	// stored secret material.
	SecretStatusRedacted SecretStatus = "Redacted"
)

// Secret is the management API's envelope for secret values.
type Secret struct {
	Status         SecretStatus `json:"status,omitempty"`
	Payload        string       `json:"payload,omitempty"`
	Key            string       `json:"key,omitempty"`
	AdditionalData string       `json:"additional_data,omitempty"`
	Mode           *int32       `json:"mode,omitempty"`
}

// PlainSecret wraps a plaintext value for server-side encryption.
func PlainSecret(payload string) *Secret {
	return &Secret{Status: SecretStatusPlain, Payload: payload}
}

// OsConfig is the local-filesystem sub configuration.
type OsConfig struct {
	ReadBufferSize  int32 `json:"read_buffer_size,omitempty"`
	WriteBufferSize int32 `json:"write_buffer_size,omitempty"`
}

// AzBlobConfig is the Azure Blob Storage sub configuration. Exactly one of
// the shared-key triple or SasURL is populated.
type AzBlobConfig struct {
	Container           string  `json:"container,omitempty"`
	AccountName         string  `json:"account_name,omitempty"`
	AccountKey          *Secret `json:"account_key,omitempty"`
	SasURL              *Secret `json:"sas_url,omitempty"`
	Endpoint            string  `json:"endpoint,omitempty"`
	UploadPartSize      int32   `json:"upload_part_size,omitempty"`
	UploadConcurrency   int32   `json:"upload_concurrency,omitempty"`
	DownloadPartSize    int32   `json:"download_part_size,omitempty"`
	DownloadConcurrency int32   `json:"download_concurrency,omitempty"`
	AccessTier          string  `json:"access_tier,omitempty"`
	KeyPrefix           string  `json:"key_prefix,omitempty"`
	UseEmulator         bool    `json:"use_emulator,omitempty"`
}

// FileSystem is the wire shape of a filesystem: a provider discriminator
// plus the matching populated sub configuration.
type FileSystem struct {
	Provider     FileSystemProvider `json:"provider"`
	OsConfig     *OsConfig          `json:"osconfig,omitempty"`
	AzBlobConfig *AzBlobConfig      `json:"azblobconfig,omitempty"`
}
