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

	"github.com/google/go-cmp/cmp"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
)

func newTestServer(mutators ...func(*sftpgov1alpha1.SftpgoServer)) *sftpgov1alpha1.SftpgoServer {
	server := &sftpgov1alpha1.SftpgoServer{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "example",
			Namespace: testNamespace,
		},
	}

	for _, mutate := range mutators {
		mutate(server)
	}

	return server
}

func portNames(ports []corev1.ContainerPort) []string {
	names := make([]string, 0, len(ports))
	for _, port := range ports {
		names = append(names, port.Name)
	}

	return names
}

func TestExpectedPortsDefault(t *testing.T) {
	got := portNames(expectedPorts(nil))

	want := []string{"http-8080"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expectedPorts() mismatch (-want +got):\n%s", diff)
	}
}

func TestExpectedPortsAllProtocols(t *testing.T) {
	conf := &sftpgov1alpha1.SftpgoConfiguration{
		Httpd: &sftpgov1alpha1.HttpdConfiguration{
			Bindings: []sftpgov1alpha1.HttpdBinding{{Port: ptr.To(int32(9000))}},
		},
		Sftpd: &sftpgov1alpha1.SftpdConfiguration{
			Bindings: []sftpgov1alpha1.SftpdBinding{{Port: ptr.To(int32(2022))}},
		},
		Ftpd: &sftpgov1alpha1.FtpdConfiguration{
			Bindings: []sftpgov1alpha1.FtpdBinding{{Port: ptr.To(int32(21))}},
			PassivePortRange: &sftpgov1alpha1.PassivePortRange{
				Start: ptr.To(int32(30000)),
				End:   ptr.To(int32(30002)),
			},
		},
	}

	got := portNames(expectedPorts(conf))

	want := []string{"http-9000", "sftp-2022", "ftp-21", "ftp-data-30000", "ftp-data-30001", "ftp-data-30002"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expectedPorts() mismatch (-want +got):\n%s", diff)
	}
}

func TestExpectedPortsBindingDefaults(t *testing.T) {
	conf := &sftpgov1alpha1.SftpgoConfiguration{
		Sftpd: &sftpgov1alpha1.SftpdConfiguration{
			Bindings: []sftpgov1alpha1.SftpdBinding{{}},
		},
		Ftpd: &sftpgov1alpha1.FtpdConfiguration{
			Bindings: []sftpgov1alpha1.FtpdBinding{{}},
		},
	}

	got := portNames(expectedPorts(conf))

	want := []string{"http-8080", "sftp-2022", "ftp-21"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expectedPorts() mismatch (-want +got):\n%s", diff)
	}
}

func TestManagementURL(t *testing.T) {
	tests := []struct {
		name   string
		server *sftpgov1alpha1.SftpgoServer
		want   string
	}{
		{
			name:   "defaults",
			server: newTestServer(),
			want:   "http://example.test-namespace.svc:8080",
		},
		{
			name: "custom port",
			server: newTestServer(func(s *sftpgov1alpha1.SftpgoServer) {
				s.Spec.Configuration = &sftpgov1alpha1.SftpgoConfiguration{
					Httpd: &sftpgov1alpha1.HttpdConfiguration{
						Bindings: []sftpgov1alpha1.HttpdBinding{{Port: ptr.To(int32(9000))}},
					},
				}
			}),
			want: "http://example.test-namespace.svc:9000",
		},
		{
			name: "tls binding",
			server: newTestServer(func(s *sftpgov1alpha1.SftpgoServer) {
				s.Spec.Configuration = &sftpgov1alpha1.SftpgoConfiguration{
					Httpd: &sftpgov1alpha1.HttpdConfiguration{
						Bindings: []sftpgov1alpha1.HttpdBinding{{EnableHttps: ptr.To(true)}},
					},
				}
			}),
			want: "https://example.test-namespace.svc:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := managementURL(tt.server); got != tt.want {
				t.Errorf("managementURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChildLabels(t *testing.T) {
	server := newTestServer(func(s *sftpgov1alpha1.SftpgoServer) {
		s.Spec.Labels = map[string]string{"team": "storage", "app": "overridden"}
	})

	got := childLabels(server)

	want := map[string]string{
		"team":       "storage",
		"app":        "example",
		"managed-by": "sftpgo-server-operator",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("childLabels() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildServiceSelectorAndPorts(t *testing.T) {
	server := newTestServer(func(s *sftpgov1alpha1.SftpgoServer) {
		s.Spec.Labels = map[string]string{"team": "storage"}
	})

	service := buildService(server, expectedPorts(nil))

	if diff := cmp.Diff(instanceLabels(server), service.Spec.Selector); diff != "" {
		t.Errorf("service selector mismatch (-want +got):\n%s", diff)
	}

	if len(service.Spec.Ports) != 1 {
		t.Fatalf("service has %d ports, want 1", len(service.Spec.Ports))
	}

	port := service.Spec.Ports[0]

	if port.Name != "http-8080" || port.Port != 8080 {
		t.Errorf("service port = %+v, want http-8080 on 8080", port)
	}

	if port.TargetPort.String() != "http-8080" {
		t.Errorf("target port = %v, want reference by name", port.TargetPort)
	}
}

func TestBuildDeploymentEnvironment(t *testing.T) {
	server := newTestServer(func(s *sftpgov1alpha1.SftpgoServer) {
		s.Spec.Configuration = &sftpgov1alpha1.SftpgoConfiguration{
			Common: &sftpgov1alpha1.CommonConfiguration{IdleTimeout: ptr.To(int64(15))},
			Httpd: &sftpgov1alpha1.HttpdConfiguration{
				Bindings: []sftpgov1alpha1.HttpdBinding{{Port: ptr.To(int32(9000))}},
			},
		}
	})

	deployment, err := buildDeployment(server, expectedPorts(server.Spec.Configuration))
	if err != nil {
		t.Fatalf("buildDeployment() returned error: %v", err)
	}

	container := deployment.Spec.Template.Spec.Containers[0]

	if container.Image != defaultImage {
		t.Errorf("image = %q, want default %q", container.Image, defaultImage)
	}

	if *deployment.Spec.Replicas != 1 {
		t.Errorf("replicas = %d, want default 1", *deployment.Spec.Replicas)
	}

	env := map[string]corev1.EnvVar{}
	for _, v := range container.Env {
		env[v.Name] = v
	}

	if got := env["SFTPGO__COMMON__IDLE_TIMEOUT"].Value; got != "15" {
		t.Errorf("SFTPGO__COMMON__IDLE_TIMEOUT = %q, want 15", got)
	}

	if got := env["SFTPGO__HTTPD__BINDINGS__0__PORT"].Value; got != "9000" {
		t.Errorf("SFTPGO__HTTPD__BINDINGS__0__PORT = %q, want 9000", got)
	}

	if got := env["SFTPGO_DATA_PROVIDER__CREATE_DEFAULT_ADMIN"].Value; got != "true" {
		t.Errorf("default admin bootstrap is not enabled, env = %v", env)
	}

	username := env["SFTPGO_DEFAULT_ADMIN_USERNAME"]
	if username.ValueFrom == nil || username.ValueFrom.SecretKeyRef == nil ||
		username.ValueFrom.SecretKeyRef.Name != "example-admin-user" {
		t.Errorf("admin username is not sourced from the credential secret: %+v", username)
	}
}

func TestEnsureAdminSecretIsStable(t *testing.T) {
	server := newTestServer()

	c := newFakeClientBuilder().WithObjects(server).Build()

	reconciler := &SftpgoServerReconciler{Client: c, Scheme: setupScheme()}

	if err := reconciler.ensureAdminSecret(context.Background(), server); err != nil {
		t.Fatalf("ensureAdminSecret() returned error: %v", err)
	}

	secret := &corev1.Secret{}
	key := types.NamespacedName{Name: "example-admin-user", Namespace: testNamespace}

	if err := c.Get(context.Background(), key, secret); err != nil {
		t.Fatalf("failed to read created secret: %v", err)
	}

	username := string(secret.Data["username"])
	password := string(secret.Data["password"])

	if !strings.HasPrefix(username, "managed_admin_") || len(username) != len("managed_admin_")+16 {
		t.Errorf("username = %q, want managed_admin_ prefix and 16 random characters", username)
	}

	if len(password) != 50 {
		t.Errorf("password length = %d, want 50", len(password))
	}

	if got := string(secret.Data["url"]); got != "http://example.test-namespace.svc:8080" {
		t.Errorf("url = %q, want in-cluster management URL", got)
	}

	// Credentials must survive any number of reconciles; only the url is
	// recomputed.
	server.Spec.Configuration = &sftpgov1alpha1.SftpgoConfiguration{
		Httpd: &sftpgov1alpha1.HttpdConfiguration{
			Bindings: []sftpgov1alpha1.HttpdBinding{{Port: ptr.To(int32(9000))}},
		},
	}

	if err := reconciler.ensureAdminSecret(context.Background(), server); err != nil {
		t.Fatalf("ensureAdminSecret() second pass returned error: %v", err)
	}

	updated := &corev1.Secret{}
	if err := c.Get(context.Background(), key, updated); err != nil {
		t.Fatalf("failed to read updated secret: %v", err)
	}

	if string(updated.Data["username"]) != username || string(updated.Data["password"]) != password {
		t.Errorf("credentials were rotated on reconcile")
	}

	if got := string(updated.Data["url"]); got != "http://example.test-namespace.svc:9000" {
		t.Errorf("url = %q, want the recomputed management URL", got)
	}

	if len(updated.OwnerReferences) != 1 || updated.OwnerReferences[0].Name != "example" {
		t.Errorf("owner references = %v, want the server instance", updated.OwnerReferences)
	}
}

func TestServerReconcileDelete(t *testing.T) {
	now := metav1.Now()

	server := newTestServer(func(s *sftpgov1alpha1.SftpgoServer) {
		s.DeletionTimestamp = &now
		s.Finalizers = []string{sftpgov1alpha1.Finalizer}
	})

	deployment := &appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Name: "example", Namespace: testNamespace}}
	service := &corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "example", Namespace: testNamespace}}
	secret := &corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: "example-admin-user", Namespace: testNamespace}}

	c := newFakeClientBuilder().WithObjects(server, deployment, service, secret).Build()

	reconciler := &SftpgoServerReconciler{Client: c, Scheme: setupScheme()}

	if err := reconciler.reconcileDelete(context.Background(), server); err != nil {
		t.Fatalf("reconcileDelete() returned error: %v", err)
	}

	if err := c.Get(context.Background(), types.NamespacedName{Name: "example", Namespace: testNamespace}, &appsv1.Deployment{}); !apierrors.IsNotFound(err) {
		t.Errorf("deployment still exists: %v", err)
	}

	if err := c.Get(context.Background(), types.NamespacedName{Name: "example", Namespace: testNamespace}, &corev1.Service{}); !apierrors.IsNotFound(err) {
		t.Errorf("service still exists: %v", err)
	}

	if err := c.Get(context.Background(), types.NamespacedName{Name: "example-admin-user", Namespace: testNamespace}, &corev1.Secret{}); !apierrors.IsNotFound(err) {
		t.Errorf("secret still exists: %v", err)
	}

	if err := c.Get(context.Background(), types.NamespacedName{Name: "example", Namespace: testNamespace}, &sftpgov1alpha1.SftpgoServer{}); !apierrors.IsNotFound(err) {
		t.Errorf("server still exists after finalizer removal: %v", err)
	}
}
