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
	"encoding/json"
	"fmt"

	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
)

// EnsureFinalizer adds the operator finalizer via a JSON merge patch.
// A resource that already carries it is left untouched.
func EnsureFinalizer(ctx context.Context, c client.Client, obj client.Object) error {
	if controllerutil.ContainsFinalizer(obj, sftpgov1alpha1.Finalizer) {
		return nil
	}

	log := ctrl.LoggerFrom(ctx)
	log.V(1).Info("Adding finalizer")

	patch, err := finalizerPatch([]string{sftpgov1alpha1.Finalizer})
	if err != nil {
		return err
	}

	if err := c.Patch(ctx, obj, client.RawPatch(types.MergePatchType, patch)); err != nil {
		return fmt.Errorf("failed to add finalizer: %w", err)
	}

	return nil
}

// RemoveFinalizer drops the operator finalizer once dependent cleanup has
// succeeded, unblocking cluster-level deletion.
func RemoveFinalizer(ctx context.Context, c client.Client, obj client.Object) error {
	if !controllerutil.ContainsFinalizer(obj, sftpgov1alpha1.Finalizer) {
		return nil
	}

	log := ctrl.LoggerFrom(ctx)
	log.V(1).Info("Removing finalizer")

	patch, err := finalizerPatch(nil)
	if err != nil {
		return err
	}

	if err := c.Patch(ctx, obj, client.RawPatch(types.MergePatchType, patch)); err != nil {
		return fmt.Errorf("failed to remove finalizer: %w", err)
	}

	return nil
}

func finalizerPatch(finalizers []string) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"metadata": map[string]interface{}{
			"finalizers": finalizers,
		},
	})
}
