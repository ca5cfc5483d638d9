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

const usersPath = "users"

// AccountStatus is the 1/0 enabled flag used by users and admins.
type AccountStatus int

const (
	AccountDisabled AccountStatus = 0
	AccountEnabled  AccountStatus = 1
)

// VirtualFolderMount attaches a defined virtual folder to a user.
type VirtualFolderMount struct {
	Name        string `json:"name"`
	VirtualPath string `json:"virtual_path"`
	QuotaSize   int64  `json:"quota_size"`
	QuotaFiles  int32  `json:"quota_files"`
}

// UserRequest is the payload for creating or updating a user.
type UserRequest struct {
	Status               AccountStatus        `json:"status"`
	Username             string               `json:"username"`
	Email                string               `json:"email,omitempty"`
	Description          string               `json:"description,omitempty"`
	ExpirationDate       int64                `json:"expiration_date,omitempty"`
	Password             string               `json:"password,omitempty"`
	PublicKeys           []string             `json:"public_keys,omitempty"`
	HomeDir              string               `json:"home_dir"`
	UID                  int32                `json:"uid,omitempty"`
	GID                  int32                `json:"gid,omitempty"`
	MaxSessions          int32                `json:"max_sessions,omitempty"`
	QuotaSize            int64                `json:"quota_size,omitempty"`
	QuotaFiles           int32                `json:"quota_files,omitempty"`
	Permissions          map[string][]string  `json:"permissions"`
	UploadBandwidth      int64                `json:"upload_bandwidth,omitempty"`
	DownloadBandwidth    int64                `json:"download_bandwidth,omitempty"`
	UploadDataTransfer   int64                `json:"upload_data_transfer,omitempty"`
	DownloadDataTransfer int64                `json:"download_data_transfer,omitempty"`
	TotalDataTransfer    int64                `json:"total_data_transfer,omitempty"`
	Filesystem           FileSystem           `json:"filesystem"`
	VirtualFolders       []VirtualFolderMount `json:"virtual_folders,omitempty"`
}

// UserResponse is the server's view of a user.
type UserResponse struct {
	ID             int32                `json:"id"`
	Status         AccountStatus        `json:"status"`
	Username       string               `json:"username"`
	Email          string               `json:"email,omitempty"`
	Description    string               `json:"description,omitempty"`
	HomeDir        string               `json:"home_dir"`
	Permissions    map[string][]string  `json:"permissions,omitempty"`
	Filesystem     *FileSystem          `json:"filesystem,omitempty"`
	VirtualFolders []VirtualFolderMount `json:"virtual_folders,omitempty"`
}

// EntityName returns the primary key the API stores the user under.
func (r UserRequest) EntityName() string { return r.Username }

// EntityID returns the server-assigned id.
func (r UserResponse) EntityID() int32 { return r.ID }

// GetUser fetches a user by name; an absent user is (nil, nil).
func (ac *AuthorizedClient) GetUser(ctx context.Context, username string) (*UserResponse, error) {
	return getEntity[UserResponse](ctx, ac, usersPath, username)
}

// CreateUser creates a user and returns the server's view of it.
func (ac *AuthorizedClient) CreateUser(ctx context.Context, req *UserRequest) (*UserResponse, error) {
	return createEntity[UserRequest, UserResponse](ctx, ac, usersPath, req)
}

// UpdateUser replaces the mutable fields of an existing user.
func (ac *AuthorizedClient) UpdateUser(ctx context.Context, req *UserRequest) error {
	return updateEntity(ctx, ac, usersPath, req.Username, req)
}

// DeleteUser removes a user. Deleting an absent user succeeds.
func (ac *AuthorizedClient) DeleteUser(ctx context.Context, username string) error {
	return deleteEntity(ctx, ac, usersPath, username)
}
