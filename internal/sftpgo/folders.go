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

import (
	"context"
)

const foldersPath = "folders"

// FolderRequest is the payload for creating or updating a virtual folder.
type FolderRequest struct {
	Name        string     `json:"name"`
	MappedPath  string     `json:"mapped_path,omitempty"`
	Description string     `json:"description,omitempty"`
	Filesystem  FileSystem `json:"filesystem"`
}

// FolderResponse is the server's view of a virtual folder.
type FolderResponse struct {
	ID          int32       `json:"id"`
	Name        string      `json:"name"`
	MappedPath  string      `json:"mapped_path,omitempty"`
	Description string      `json:"description,omitempty"`
	Filesystem  *FileSystem `json:"filesystem,omitempty"`
}

// EntityName returns the primary key the API stores the folder under.
func (r FolderRequest) EntityName() string { return r.Name }

// EntityID returns the server-assigned id.
func (r FolderResponse) EntityID() int32 { return r.ID }

// GetFolder fetches a folder by name; an absent folder is (nil, nil).
func (ac *AuthorizedClient) GetFolder(ctx context.Context, name string) (*FolderResponse, error) {
	return getEntity[FolderResponse](ctx, ac, foldersPath, name)
}

// CreateFolder creates a folder and returns the server's view of it.
func (ac *AuthorizedClient) CreateFolder(ctx context.Context, req *FolderRequest) (*FolderResponse, error) {
	return createEntity[FolderRequest, FolderResponse](ctx, ac, foldersPath, req)
}

// UpdateFolder replaces the mutable fields of an existing folder.
func (ac *AuthorizedClient) UpdateFolder(ctx context.Context, req *FolderRequest) error {
	return updateEntity(ctx, ac, foldersPath, req.Name, req)
}

// DeleteFolder removes a folder. Deleting an absent folder succeeds.
func (ac *AuthorizedClient) DeleteFolder(ctx context.Context, name string) error {
	return deleteEntity(ctx, ac, foldersPath, name)
}
