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
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
)

func TestResolveAdminClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		ref     sftpgov1alpha1.ServerReference
		objects []*corev1.Secret
	}{
		{
			name: "neither name nor connectionSecret",
			ref:  sftpgov1alpha1.ServerReference{},
		},
		{
			name: "both name and connectionSecret",
			ref: sftpgov1alpha1.ServerReference{
				Name:             "example",
				ConnectionSecret: &sftpgov1alpha1.ConnectionSecret{Name: "creds"},
			},
		},
		{
			name: "missing secret",
			ref:  sftpgov1alpha1.ServerReference{Name: "example"},
		},
		{
			name: "missing key",
			ref:  sftpgov1alpha1.ServerReference{ConnectionSecret: &sftpgov1alpha1.ConnectionSecret{Name: "creds"}},
			objects: []*corev1.Secret{{
				ObjectMeta: metav1.ObjectMeta{Name: "creds", Namespace: testNamespace},
				Data: map[string][]byte{
					"url": []byte("http://example:8080"),
				},
			}},
		},
		{
			name: "invalid utf8",
			ref:  sftpgov1alpha1.ServerReference{ConnectionSecret: &sftpgov1alpha1.ConnectionSecret{Name: "creds"}},
			objects: []*corev1.Secret{{
				ObjectMeta: metav1.ObjectMeta{Name: "creds", Namespace: testNamespace},
				Data: map[string][]byte{
					"url":      []byte("http://example:8080"),
					"username": {0xff, 0xfe},
					"password": []byte("pw"),
				},
			}},
		},
		{
			name: "invalid url",
			ref:  sftpgov1alpha1.ServerReference{ConnectionSecret: &sftpgov1alpha1.ConnectionSecret{Name: "creds"}},
			objects: []*corev1.Secret{{
				ObjectMeta: metav1.ObjectMeta{Name: "creds", Namespace: testNamespace},
				Data: map[string][]byte{
					"url":      []byte("example-without-scheme"),
					"username": []byte("admin"),
					"password": []byte("pw"),
				},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := newFakeClientBuilder()
			for _, secret := range tt.objects {
				builder = builder.WithObjects(secret)
			}

			_, err := ResolveAdminClient(context.Background(), builder.Build(), newTestPool(), testNamespace, &tt.ref)
			if !IsUserInput(err) {
				t.Errorf("ResolveAdminClient() error = %v, want a user-input error", err)
			}
		})
	}
}

func TestResolveAdminClientOverrides(t *testing.T) {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "creds", Namespace: testNamespace, UID: "uid-1"},
		Data: map[string][]byte{
			"url":      []byte("not-a-url"),
			"username": []byte("admin"),
			"password": []byte("pw"),
		},
	}

	ref := sftpgov1alpha1.ServerReference{
		ConnectionSecret: &sftpgov1alpha1.ConnectionSecret{Name: "creds"},
		OverrideValues:   &sftpgov1alpha1.ConnectionOverride{URL: "http://external.example.com:8080"},
	}

	c := newFakeClientBuilder().WithObjects(secret).Build()

	// The secret carries an unusable url; the override must win before the
	// pool parses it.
	if _, err := ResolveAdminClient(context.Background(), c, newTestPool(), testNamespace, &ref); err != nil {
		t.Fatalf("ResolveAdminClient() returned error: %v", err)
	}
}

func TestResolveAdminClientDefaultsNamespace(t *testing.T) {
	secret := newConnectionSecret("http://example.test-namespace.svc:8080")

	ref := exampleServerReference()

	c := newFakeClientBuilder().WithObjects(secret).Build()

	if _, err := ResolveAdminClient(context.Background(), c, newTestPool(), testNamespace, &ref); err != nil {
		t.Fatalf("ResolveAdminClient() returned error: %v", err)
	}
}
