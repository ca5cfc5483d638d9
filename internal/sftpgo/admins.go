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

const adminsPath = "admins"

// AdminRequest is the payload for creating or updating an administrator.
type AdminRequest struct {
	Username    string        `json:"username"`
	Description string        `json:"description,omitempty"`
	Password    string        `json:"password,omitempty"`
	Email       string        `json:"email,omitempty"`
	Permissions []string      `json:"permissions"`
	Status      AccountStatus `json:"status"`
	Role        string        `json:"role,omitempty"`
}

// AdminResponse is the server's view of an administrator.
type AdminResponse struct {
	ID          int32         `json:"id"`
	Username    string        `json:"username"`
	Status      AccountStatus `json:"status"`
	Description string        `json:"description,omitempty"`
	Email       string        `json:"email,omitempty"`
	Permissions []string      `json:"permissions,omitempty"`
	Role        string        `json:"role,omitempty"`
}

// EntityName returns the primary key the API stores the admin under.
func (r AdminRequest) EntityName() string { return r.Username }

// EntityID returns the server-assigned id.
func (r AdminResponse) EntityID() int32 { return r.ID }

// GetAdmin fetches an admin by name; an absent admin is (nil, nil).
func (ac *AuthorizedClient) GetAdmin(ctx context.Context, username string) (*AdminResponse, error) {
	return getEntity[AdminResponse](ctx, ac, adminsPath, username)
}

// CreateAdmin creates an admin and returns the server's view of it.
func (ac *AuthorizedClient) CreateAdmin(ctx context.Context, req *AdminRequest) (*AdminResponse, error) {
	return createEntity[AdminRequest, AdminResponse](ctx, ac, adminsPath, req)
}

// UpdateAdmin replaces the mutable fields of an existing admin.
func (ac *AuthorizedClient) UpdateAdmin(ctx context.Context, req *AdminRequest) error {
	return updateEntity(ctx, ac, adminsPath, req.Username, req)
}

// DeleteAdmin removes an admin. Deleting an absent admin succeeds.
func (ac *AuthorizedClient) DeleteAdmin(ctx context.Context, username string) error {
	return deleteEntity(ctx, ac, adminsPath, username)
}
