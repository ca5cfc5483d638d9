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

	"sigs.k8s.io/controller-runtime/pkg/client"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-server-operator/internal/sftpgo"
)

// FolderAdapter wires SftpgoFolder resources into the generic domain
// reconciler.
type FolderAdapter struct{}

func (FolderAdapter) NewObject() sftpgov1alpha1.DomainResource {
	return &sftpgov1alpha1.SftpgoFolder{}
}

func (FolderAdapter) Sync(ctx context.Context, _ client.Client, api *sftpgo.AuthorizedClient, obj sftpgov1alpha1.DomainResource) (*int32, error) {
	folder, ok := obj.(*sftpgov1alpha1.SftpgoFolder)
	if !ok {
		return nil, fmt.Errorf("expected a SftpgoFolder but got a %T", obj)
	}

	conf := &folder.Spec.Configuration

	filesystem, err := calculateFileSystem(&conf.Filesystem)
	if err != nil {
		return nil, err
	}

	req := sftpgo.FolderRequest{
		Name:        conf.Name,
		MappedPath:  conf.MappedPath,
		Description: conf.Description,
		Filesystem:  filesystem,
	}

	return sftpgo.Sync[sftpgo.FolderRequest, sftpgo.FolderResponse](ctx, api, "folders", req)
}

func (FolderAdapter) Delete(ctx context.Context, api *sftpgo.AuthorizedClient, name string) error {
	return api.DeleteFolder(ctx, name)
}
