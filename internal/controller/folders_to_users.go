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
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
)

// newFolderToUsersMapFunc maps a folder event to every user whose
// virtualFolders list mentions that folder, matching on name and resolved
// namespace. A newly-ready folder id is what unblocks those users.
func newFolderToUsersMapFunc(k8sClient client.Client) handler.MapFunc {
	return func(ctx context.Context, obj client.Object) []reconcile.Request {
		log := ctrl.LoggerFrom(ctx).WithValues("folder", map[string]string{"name": obj.GetName(), "namespace": obj.GetNamespace()})

		folder, ok := obj.(*sftpgov1alpha1.SftpgoFolder)
		if !ok {
			log.Error(fmt.Errorf("expected a SftpgoFolder but got a %T", obj), "unable to cast object")
			return nil
		}

		users := &sftpgov1alpha1.SftpgoUserList{}
		if err := k8sClient.List(ctx, users); err != nil {
			log.Error(err, "failed to list users")
			return nil
		}

		var requests []reconcile.Request

		for i := range users.Items {
			user := &users.Items[i]

			if userReferencesFolder(user, folder) {
				requests = append(requests, reconcile.Request{NamespacedName: client.ObjectKeyFromObject(user)})
			}
		}

		return requests
	}
}

func userReferencesFolder(user *sftpgov1alpha1.SftpgoUser, folder *sftpgov1alpha1.SftpgoFolder) bool {
	for _, ref := range user.Spec.Configuration.VirtualFolders {
		namespace := goutils.DefaultString(ref.Namespace, user.Namespace)

		if ref.Name == folder.Name && namespace == folder.Namespace {
			return true
		}
	}

	return false
}
