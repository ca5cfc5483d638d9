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
	"context"
	"fmt"

	"github.com/Masterminds/goutils"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-server-operator/internal/sftpgo"
	"github.com/zlepper/sftpgo-server-operator/util"
)

// UserAdapter wires SftpgoUser resources into the generic domain reconciler.
type UserAdapter struct{}

func (UserAdapter) NewObject() sftpgov1alpha1.DomainResource {
	return &sftpgov1alpha1.SftpgoUser{}
}

func (UserAdapter) Sync(ctx context.Context, c client.Client, api *sftpgo.AuthorizedClient, obj sftpgov1alpha1.DomainResource) (*int32, error) {
	user, ok := obj.(*sftpgov1alpha1.SftpgoUser)
	if !ok {
		return nil, fmt.Errorf("expected a SftpgoUser but got a %T", obj)
	}

	req, err := buildUserRequest(ctx, c, user)
	if err != nil {
		return nil, err
	}

	return sftpgo.Sync[sftpgo.UserRequest, sftpgo.UserResponse](ctx, api, "users", *req)
}

func (UserAdapter) Delete(ctx context.Context, api *sftpgo.AuthorizedClient, name string) error {
	return api.DeleteUser(ctx, name)
}

// addWatches subscribes the user controller to folder changes: a folder
// becoming ready unblocks every user whose virtualFolders reference it.
func (UserAdapter) addWatches(bldr *ctrl.Builder, c client.Client) *ctrl.Builder {
	return bldr.Watches(
		&sftpgov1alpha1.SftpgoFolder{},
		handler.EnqueueRequestsFromMapFunc(newFolderToUsersMapFunc(c)),
	)
}

func buildUserRequest(ctx context.Context, c client.Client, user *sftpgov1alpha1.SftpgoUser) (*sftpgo.UserRequest, error) {
	conf := &user.Spec.Configuration

	permissions := map[string][]string{}

	// Global permissions apply to the whole tree; an empty list grants
	// everything.
	if len(conf.GlobalPermissions) == 0 {
		permissions["/"] = []string{sftpgov1alpha1.UserPermissionAll.WireValue()}
	} else {
		permissions["/"] = userPermissionTokens(conf.GlobalPermissions)
	}

	for _, directory := range conf.PerDirectoryPermissions {
		permissions[directory.Path] = userPermissionTokens(directory.Permissions)
	}

	filesystem, err := calculateFileSystem(&conf.Filesystem)
	if err != nil {
		return nil, err
	}

	mounts, err := resolveVirtualFolders(ctx, c, user)
	if err != nil {
		return nil, err
	}

	return &sftpgo.UserRequest{
		Status:         accountStatus(conf.Enabled),
		Username:       conf.Username,
		Password:       conf.Password,
		HomeDir:        conf.HomeDir,
		Permissions:    permissions,
		Filesystem:     filesystem,
		VirtualFolders: mounts,
	}, nil
}

// resolveVirtualFolders looks up every referenced folder resource. A folder
// that has not been created server-side yet makes the user not ready.
func resolveVirtualFolders(ctx context.Context, c client.Client, user *sftpgov1alpha1.SftpgoUser) ([]sftpgo.VirtualFolderMount, error) {
	var mounts []sftpgo.VirtualFolderMount

	for _, ref := range user.Spec.Configuration.VirtualFolders {
		key := types.NamespacedName{
			Name:      ref.Name,
			Namespace: goutils.DefaultString(ref.Namespace, user.Namespace),
		}

		folder := &sftpgov1alpha1.SftpgoFolder{}
		if err := c.Get(ctx, key, folder); err != nil {
			if apierrors.IsNotFound(err) {
				return nil, &NotReadyError{Reason: fmt.Sprintf("virtual folder %s/%s does not exist", key.Namespace, key.Name)}
			}

			return nil, fmt.Errorf("failed to read virtual folder %s/%s: %w", key.Namespace, key.Name, err)
		}

		if folder.GetEntityID() == nil || folder.GetLastName() == "" {
			return nil, &NotReadyError{Reason: fmt.Sprintf("virtual folder %s/%s has not been created server-side yet", key.Namespace, key.Name)}
		}

		mounts = append(mounts, sftpgo.VirtualFolderMount{
			Name:        folder.GetLastName(),
			VirtualPath: ref.VirtualPath,
			QuotaSize:   util.OrDefault(ref.QuotaSize, 0),
			QuotaFiles:  util.OrDefault(ref.QuotaFiles, 0),
		})
	}

	return mounts, nil
}

func userPermissionTokens(permissions []sftpgov1alpha1.UserPermission) []string {
	tokens := make([]string, 0, len(permissions))
	for _, p := range permissions {
		tokens = append(tokens, p.WireValue())
	}

	return tokens
}

// accountStatus maps the declarative enabled flag to the API's 1/0 value.
// A missing flag means enabled.
func accountStatus(enabled *sftpgov1alpha1.EnabledStatus) sftpgo.AccountStatus {
	if enabled != nil && *enabled == sftpgov1alpha1.Disabled {
		return sftpgo.AccountDisabled
	}

	return sftpgo.AccountEnabled
}
