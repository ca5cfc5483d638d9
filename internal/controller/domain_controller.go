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
	"errors"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-server-operator/internal/sftpgo"
)

// notReadyRequeueDelay bounds the wait for a dependent that has not been
// materialized yet. The cross-kind watch usually triggers much earlier.
const notReadyRequeueDelay = 15 * time.Second

// DomainAdapter is the per-kind glue the generic domain reconciler is
// parameterized with: a fresh object, the entity sync and the entity delete.
type DomainAdapter interface {
	// NewObject returns an empty instance of the reconciled kind.
	NewObject() sftpgov1alpha1.DomainResource

	// Sync converges the server-side entity to the resource's spec and
	// returns the server-assigned id. Building the request may perform
	// dependent lookups and return a *NotReadyError.
	Sync(ctx context.Context, c client.Client, api *sftpgo.AuthorizedClient, obj sftpgov1alpha1.DomainResource) (*int32, error)

	// Delete removes the server-side entity stored under name. Deleting an
	// absent entity succeeds.
	Delete(ctx context.Context, api *sftpgo.AuthorizedClient, name string) error
}

// watchContributor lets an adapter register additional watches, e.g. the
// user adapter's interest in folder changes.
type watchContributor interface {
	addWatches(bldr *ctrl.Builder, c client.Client) *ctrl.Builder
}

// DomainReconciler drives the create/update/delete/rename lifecycle for any
// custom resource whose spec maps to a single management-API entity.
type DomainReconciler struct {
	Client  client.Client
	Pool    *sftpgo.ClientPool
	Adapter DomainAdapter
}

func (r *DomainReconciler) SetupWithManager(mgr ctrl.Manager, options controller.Options) error {
	bldr := ctrl.NewControllerManagedBy(mgr).
		For(r.Adapter.NewObject())

	if contributor, ok := r.Adapter.(watchContributor); ok {
		bldr = contributor.addWatches(bldr, mgr.GetClient())
	}

	return bldr.WithOptions(options).Complete(r)
}

func (r *DomainReconciler) Reconcile(ctx context.Context, req reconcile.Request) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	// The queued object is a cache snapshot; read back fresh state so the
	// rename and status decisions below never act on stale status.
	obj := r.Adapter.NewObject()
	if err := r.Client.Get(ctx, req.NamespacedName, obj); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}

		return ctrl.Result{}, err
	}

	api, err := ResolveAdminClient(ctx, r.Client, r.Pool, obj.GetNamespace(), obj.GetServerReference())
	if err != nil {
		return ctrl.Result{}, err
	}

	if !obj.GetDeletionTimestamp().IsZero() {
		return ctrl.Result{}, r.reconcileDelete(ctx, api, obj)
	}

	// Add the finalizer before anything is created server-side, so a delete
	// racing the first sync still reaches the cleanup path.
	if err := EnsureFinalizer(ctx, r.Client, obj); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.reconcileRename(ctx, api, obj); err != nil {
		return ctrl.Result{}, err
	}

	id, err := r.Adapter.Sync(ctx, r.Client, api, obj)
	if err != nil {
		var notReady *NotReadyError
		if errors.As(err, &notReady) {
			log.Info("Dependent resource is not ready, requeueing", "reason", notReady.Reason)

			return ctrl.Result{RequeueAfter: notReadyRequeueDelay}, nil
		}

		return ctrl.Result{}, err
	}

	if err := r.recordSynced(ctx, obj, id); err != nil {
		return ctrl.Result{}, err
	}

	log.Info("Reconciled resource", "entity", obj.GetEntityName())

	return ctrl.Result{}, nil
}

// reconcileDelete removes the server-side entity (and, after a rename that
// never completed, the stale one) before releasing the finalizer.
func (r *DomainReconciler) reconcileDelete(ctx context.Context, api *sftpgo.AuthorizedClient, obj sftpgov1alpha1.DomainResource) error {
	log := ctrl.LoggerFrom(ctx)

	name := obj.GetEntityName()

	if last := obj.GetLastName(); last != "" && last != name {
		if err := r.Adapter.Delete(ctx, api, last); err != nil {
			// Best effort; the delete below and the finalizer removal must
			// not be blocked by a stale name that may never have existed.
			log.Error(err, "Failed to delete previous server-side entity", "entity", last)
		}
	}

	if err := r.Adapter.Delete(ctx, api, name); err != nil {
		return fmt.Errorf("failed to delete server-side entity %q: %w", name, err)
	}

	log.Info("Deleted server-side entity", "entity", name)

	return RemoveFinalizer(ctx, r.Client, obj)
}

// reconcileRename initializes status on first observation and handles a
// changed spec name: the entity under the previous name is deleted, then
// status is patched before the new entity is created so a crash mid-rename
// leaves the system recoverable.
func (r *DomainReconciler) reconcileRename(ctx context.Context, api *sftpgo.AuthorizedClient, obj sftpgov1alpha1.DomainResource) error {
	log := ctrl.LoggerFrom(ctx)

	name := obj.GetEntityName()

	if !obj.HasDomainStatus() {
		base := obj.DeepCopyObject().(client.Object)
		obj.SetLastName(name)

		return r.Client.Status().Patch(ctx, obj, client.MergeFrom(base))
	}

	last := obj.GetLastName()
	if last == name {
		return nil
	}

	log.Info("Entity was renamed, deleting previous server-side entity", "from", last, "to", name)

	if err := r.Adapter.Delete(ctx, api, last); err != nil {
		return fmt.Errorf("failed to delete renamed server-side entity %q: %w", last, err)
	}

	base := obj.DeepCopyObject().(client.Object)
	obj.SetLastName(name)

	return r.Client.Status().Patch(ctx, obj, client.MergeFrom(base))
}

// recordSynced stores the server-assigned id together with the name it was
// created under.
func (r *DomainReconciler) recordSynced(ctx context.Context, obj sftpgov1alpha1.DomainResource, id *int32) error {
	if id == nil {
		return nil
	}

	current := obj.GetEntityID()
	if current != nil && *current == *id && obj.GetLastName() == obj.GetEntityName() {
		return nil
	}

	base := obj.DeepCopyObject().(client.Object)
	obj.SetLastName(obj.GetEntityName())
	obj.SetEntityID(id)

	return r.Client.Status().Patch(ctx, obj, client.MergeFrom(base))
}
