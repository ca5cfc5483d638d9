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
	"strings"
	"testing"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
)

func newTestUser(mutators ...func(*sftpgov1alpha1.SftpgoUser)) *sftpgov1alpha1.SftpgoUser {
	user := &sftpgov1alpha1.SftpgoUser{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "alice",
			Namespace: testNamespace,
		},
		Spec: sftpgov1alpha1.SftpgoUserSpec{
			Configuration: sftpgov1alpha1.SftpgoUserConfiguration{
				Username: "alice",
				Password: "hunter2",
				HomeDir:  "/srv/alice",
			},
			ServerReference: exampleServerReference(),
		},
	}

	for _, mutate := range mutators {
		mutate(user)
	}

	return user
}

func reconcileUser(t *testing.T, c client.Client, name string) (ctrl.Result, error) {
	t.Helper()

	reconciler := &DomainReconciler{
		Client:  c,
		Pool:    newTestPool(),
		Adapter: UserAdapter{},
	}

	return reconciler.Reconcile(context.Background(), reconcile.Request{
		NamespacedName: types.NamespacedName{Name: name, Namespace: testNamespace},
	})
}

func TestUserFirstReconcile(t *testing.T) {
	api := newFakeManagementAPI()
	server := api.start(t)

	c := newFakeClientBuilder().
		WithObjects(newConnectionSecret(server.URL), newTestUser()).
		Build()

	if _, err := reconcileUser(t, c, "alice"); err != nil {
		t.Fatalf("Reconcile() returned error: %v", err)
	}

	user := &sftpgov1alpha1.SftpgoUser{}
	if err := c.Get(context.Background(), types.NamespacedName{Name: "alice", Namespace: testNamespace}, user); err != nil {
		t.Fatalf("failed to read back user: %v", err)
	}

	if !controllerutil.ContainsFinalizer(user, sftpgov1alpha1.Finalizer) {
		t.Errorf("finalizer was not added")
	}

	if user.Status == nil {
		t.Fatalf("status was not initialized")
	}

	if user.Status.LastUsername != "alice" {
		t.Errorf("status.lastUsername = %q, want %q", user.Status.LastUsername, "alice")
	}

	if user.Status.ID == nil || *user.Status.ID != 1 {
		t.Errorf("status.id = %v, want 1", user.Status.ID)
	}

	if len(api.Creates) != 1 || api.Creates[0] != "users/alice" {
		t.Errorf("creates = %v, want exactly users/alice", api.Creates)
	}
}

func TestUserReconcileIsIdempotent(t *testing.T) {
	api := newFakeManagementAPI()
	server := api.start(t)

	c := newFakeClientBuilder().
		WithObjects(newConnectionSecret(server.URL), newTestUser()).
		Build()

	for i := 0; i < 2; i++ {
		if _, err := reconcileUser(t, c, "alice"); err != nil {
			t.Fatalf("Reconcile() pass %d returned error: %v", i, err)
		}
	}

	if len(api.Creates) != 1 {
		t.Errorf("creates = %v, want a single create", api.Creates)
	}

	if len(api.Updates) != 1 || api.Updates[0] != "users/alice" {
		t.Errorf("updates = %v, want the second pass to update", api.Updates)
	}
}

func TestUserRename(t *testing.T) {
	api := newFakeManagementAPI()
	api.put("users", "alice", 7)
	server := api.start(t)

	user := newTestUser(func(u *sftpgov1alpha1.SftpgoUser) {
		u.Spec.Configuration.Username = "alicia"
		u.Finalizers = []string{sftpgov1alpha1.Finalizer}
		u.Status = &sftpgov1alpha1.SftpgoUserStatus{LastUsername: "alice", ID: ptr.To(int32(7))}
	})

	c := newFakeClientBuilder().
		WithObjects(newConnectionSecret(server.URL), user).
		Build()

	if _, err := reconcileUser(t, c, "alice"); err != nil {
		t.Fatalf("Reconcile() returned error: %v", err)
	}

	if len(api.Deletes) != 1 || api.Deletes[0] != "users/alice" {
		t.Errorf("deletes = %v, want the previous entity to be removed", api.Deletes)
	}

	if len(api.Creates) != 1 || api.Creates[0] != "users/alicia" {
		t.Errorf("creates = %v, want users/alicia", api.Creates)
	}

	got := &sftpgov1alpha1.SftpgoUser{}
	if err := c.Get(context.Background(), types.NamespacedName{Name: "alice", Namespace: testNamespace}, got); err != nil {
		t.Fatalf("failed to read back user: %v", err)
	}

	if got.Status.LastUsername != "alicia" {
		t.Errorf("status.lastUsername = %q, want %q", got.Status.LastUsername, "alicia")
	}

	if got.Status.ID == nil || *got.Status.ID == 7 {
		t.Errorf("status.id = %v, want the id of the recreated entity", got.Status.ID)
	}
}

func TestUserFolderNotReady(t *testing.T) {
	api := newFakeManagementAPI()
	server := api.start(t)

	user := newTestUser(func(u *sftpgov1alpha1.SftpgoUser) {
		u.Spec.Configuration.VirtualFolders = []sftpgov1alpha1.VirtualFolderReference{{
			Name:        "shared",
			VirtualPath: "/mnt/shared",
		}}
	})

	folder := &sftpgov1alpha1.SftpgoFolder{
		ObjectMeta: metav1.ObjectMeta{Name: "shared", Namespace: testNamespace},
		Spec: sftpgov1alpha1.SftpgoFolderSpec{
			Configuration:   sftpgov1alpha1.SftpgoFolderConfiguration{Name: "shared", MappedPath: "/srv/shared"},
			ServerReference: exampleServerReference(),
		},
	}

	c := newFakeClientBuilder().
		WithObjects(newConnectionSecret(server.URL), user, folder).
		Build()

	result, err := reconcileUser(t, c, "alice")
	if err != nil {
		t.Fatalf("Reconcile() returned error for a not-ready folder: %v", err)
	}

	if result.RequeueAfter != 15*time.Second {
		t.Errorf("RequeueAfter = %v, want a bounded requeue", result.RequeueAfter)
	}

	if len(api.Creates) != 0 {
		t.Errorf("creates = %v, want no server-side writes while not ready", api.Creates)
	}

	// Once the folder has been materialized server-side the user syncs and
	// references the folder by its stored name.
	base := folder.DeepCopy()
	folder.Status = &sftpgov1alpha1.SftpgoFolderStatus{LastName: "shared", ID: ptr.To(int32(3))}

	if err := c.Status().Patch(context.Background(), folder, client.MergeFrom(base)); err != nil {
		t.Fatalf("failed to mark folder ready: %v", err)
	}

	if _, err := reconcileUser(t, c, "alice"); err != nil {
		t.Fatalf("Reconcile() returned error after folder became ready: %v", err)
	}

	body := api.Bodies["users/alice"]
	if !strings.Contains(body, `"name":"shared"`) {
		t.Errorf("create payload %q does not reference folder by name", body)
	}

	if !strings.Contains(body, `"virtual_path":"/mnt/shared"`) {
		t.Errorf("create payload %q does not carry the virtual path", body)
	}
}

func TestUserDeletion(t *testing.T) {
	api := newFakeManagementAPI()
	api.put("users", "alice", 4)
	server := api.start(t)

	now := metav1.Now()

	user := newTestUser(func(u *sftpgov1alpha1.SftpgoUser) {
		u.DeletionTimestamp = &now
		u.Finalizers = []string{sftpgov1alpha1.Finalizer}
		u.Status = &sftpgov1alpha1.SftpgoUserStatus{LastUsername: "alice", ID: ptr.To(int32(4))}
	})

	c := newFakeClientBuilder().
		WithObjects(newConnectionSecret(server.URL), user).
		Build()

	if _, err := reconcileUser(t, c, "alice"); err != nil {
		t.Fatalf("Reconcile() returned error: %v", err)
	}

	if len(api.Deletes) != 1 || api.Deletes[0] != "users/alice" {
		t.Errorf("deletes = %v, want users/alice", api.Deletes)
	}

	err := c.Get(context.Background(), types.NamespacedName{Name: "alice", Namespace: testNamespace}, &sftpgov1alpha1.SftpgoUser{})
	if !apierrors.IsNotFound(err) {
		t.Errorf("user still exists after finalizer removal: %v", err)
	}
}

func TestUserDeletionAfterUnfinishedRename(t *testing.T) {
	api := newFakeManagementAPI()
	api.put("users", "alice", 4)
	api.put("users", "alicia", 5)
	server := api.start(t)

	now := metav1.Now()

	user := newTestUser(func(u *sftpgov1alpha1.SftpgoUser) {
		u.Spec.Configuration.Username = "alicia"
		u.DeletionTimestamp = &now
		u.Finalizers = []string{sftpgov1alpha1.Finalizer}
		u.Status = &sftpgov1alpha1.SftpgoUserStatus{LastUsername: "alice", ID: ptr.To(int32(4))}
	})

	c := newFakeClientBuilder().
		WithObjects(newConnectionSecret(server.URL), user).
		Build()

	if _, err := reconcileUser(t, c, "alice"); err != nil {
		t.Fatalf("Reconcile() returned error: %v", err)
	}

	if len(api.Deletes) != 2 {
		t.Fatalf("deletes = %v, want both the stale and the current entity", api.Deletes)
	}

	if api.Deletes[0] != "users/alice" || api.Deletes[1] != "users/alicia" {
		t.Errorf("deletes = %v, want the stale name removed first", api.Deletes)
	}
}

func TestAdminReconcilePayload(t *testing.T) {
	api := newFakeManagementAPI()
	server := api.start(t)

	admin := &sftpgov1alpha1.SftpgoAdmin{
		ObjectMeta: metav1.ObjectMeta{Name: "ops", Namespace: testNamespace},
		Spec: sftpgov1alpha1.SftpgoAdminSpec{
			Configuration: sftpgov1alpha1.SftpgoAdminConfiguration{
				Username:    "ops",
				Password:    "hunter2",
				Permissions: []sftpgov1alpha1.AdminPermission{sftpgov1alpha1.AdminPermissionAll},
			},
			ServerReference: exampleServerReference(),
		},
	}

	c := newFakeClientBuilder().
		WithObjects(newConnectionSecret(server.URL), admin).
		Build()

	reconciler := &DomainReconciler{Client: c, Pool: newTestPool(), Adapter: AdminAdapter{}}

	if _, err := reconciler.Reconcile(context.Background(), reconcile.Request{
		NamespacedName: types.NamespacedName{Name: "ops", Namespace: testNamespace},
	}); err != nil {
		t.Fatalf("Reconcile() returned error: %v", err)
	}

	body := api.Bodies["admins/ops"]

	if !strings.Contains(body, `"permissions":["*"]`) {
		t.Errorf("create payload %q does not spell the catch-all permission as *", body)
	}

	if !strings.Contains(body, `"status":1`) {
		t.Errorf("create payload %q does not default to enabled", body)
	}
}

func TestFolderReconcileRecordsStatus(t *testing.T) {
	api := newFakeManagementAPI()
	server := api.start(t)

	folder := &sftpgov1alpha1.SftpgoFolder{
		ObjectMeta: metav1.ObjectMeta{Name: "shared", Namespace: testNamespace},
		Spec: sftpgov1alpha1.SftpgoFolderSpec{
			Configuration:   sftpgov1alpha1.SftpgoFolderConfiguration{Name: "shared", MappedPath: "/srv/shared"},
			ServerReference: exampleServerReference(),
		},
	}

	c := newFakeClientBuilder().
		WithObjects(newConnectionSecret(server.URL), folder).
		Build()

	reconciler := &DomainReconciler{Client: c, Pool: newTestPool(), Adapter: FolderAdapter{}}

	if _, err := reconciler.Reconcile(context.Background(), reconcile.Request{
		NamespacedName: types.NamespacedName{Name: "shared", Namespace: testNamespace},
	}); err != nil {
		t.Fatalf("Reconcile() returned error: %v", err)
	}

	got := &sftpgov1alpha1.SftpgoFolder{}
	if err := c.Get(context.Background(), types.NamespacedName{Name: "shared", Namespace: testNamespace}, got); err != nil {
		t.Fatalf("failed to read back folder: %v", err)
	}

	if got.Status == nil || got.Status.LastName != "shared" || got.Status.ID == nil {
		t.Errorf("folder status = %+v, want lastName and id recorded", got.Status)
	}
}

func TestReconcileRejectsAmbiguousServerReference(t *testing.T) {
	user := newTestUser(func(u *sftpgov1alpha1.SftpgoUser) {
		u.Spec.ServerReference.ConnectionSecret = &sftpgov1alpha1.ConnectionSecret{Name: "other"}
	})

	c := newFakeClientBuilder().WithObjects(user).Build()

	_, err := reconcileUser(t, c, "alice")
	if !IsUserInput(err) {
		t.Fatalf("Reconcile() error = %v, want a user-input error", err)
	}
}
