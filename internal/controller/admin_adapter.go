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

// AdminAdapter wires SftpgoAdmin resources into the generic domain
// reconciler.
type AdminAdapter struct{}

func (AdminAdapter) NewObject() sftpgov1alpha1.DomainResource {
	return &sftpgov1alpha1.SftpgoAdmin{}
}

func (AdminAdapter) Sync(ctx context.Context, _ client.Client, api *sftpgo.AuthorizedClient, obj sftpgov1alpha1.DomainResource) (*int32, error) {
	admin, ok := obj.(*sftpgov1alpha1.SftpgoAdmin)
	if !ok {
		return nil, fmt.Errorf("expected a SftpgoAdmin but got a %T", obj)
	}

	conf := &admin.Spec.Configuration

	permissions := make([]string, 0, len(conf.Permissions))
	for _, p := range conf.Permissions {
		permissions = append(permissions, p.WireValue())
	}

	req := sftpgo.AdminRequest{
		Username:    conf.Username,
		Description: conf.Description,
		Password:    conf.Password,
		Email:       conf.Email,
		Permissions: permissions,
		Status:      accountStatus(conf.Enabled),
		Role:        conf.Role,
	}

	return sftpgo.Sync[sftpgo.AdminRequest, sftpgo.AdminResponse](ctx, api, "admins", req)
}

func (AdminAdapter) Delete(ctx context.Context, api *sftpgo.AuthorizedClient, name string) error {
	return api.DeleteAdmin(ctx, name)
}
