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

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
)

func userWithFolderRef(name, namespace, folderName, folderNamespace string) *sftpgov1alpha1.SftpgoUser {
	return &sftpgov1alpha1.SftpgoUser{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Spec: sftpgov1alpha1.SftpgoUserSpec{
			Configuration: sftpgov1alpha1.SftpgoUserConfiguration{
				Username: name,
				Password: "pw",
				HomeDir:  "/srv/" + name,
				VirtualFolders: []sftpgov1alpha1.VirtualFolderReference{{
					Name:        folderName,
					Namespace:   folderNamespace,
					VirtualPath: "/mnt",
				}},
			},
			ServerReference: exampleServerReference(),
		},
	}
}

func TestFolderToUsersMapFunc(t *testing.T) {
	folder := &sftpgov1alpha1.SftpgoFolder{
		ObjectMeta: metav1.ObjectMeta{Name: "shared", Namespace: testNamespace},
	}

	// References resolve against the user's own namespace when none is
	// given, so the first two users match and the others do not.
	sameNamespace := userWithFolderRef("implicit", testNamespace, "shared", "")
	explicitNamespace := userWithFolderRef("explicit", "elsewhere", "shared", testNamespace)
	otherNamespace := userWithFolderRef("other-ns", "elsewhere", "shared", "")
	otherFolder := userWithFolderRef("other-folder", testNamespace, "different", "")

	c := newFakeClientBuilder().
		WithObjects(sameNamespace, explicitNamespace, otherNamespace, otherFolder).
		Build()

	mapFunc := newFolderToUsersMapFunc(c)

	got := mapFunc(context.Background(), folder)

	if len(got) != 2 {
		t.Fatalf("mapFunc() returned %d requests, want 2: %v", len(got), got)
	}

	names := map[string]bool{}
	for _, req := range got {
		names[req.Name] = true
	}

	if !names["implicit"] || !names["explicit"] {
		t.Errorf("mapFunc() = %v, want implicit and explicit users enqueued", got)
	}
}

func TestFolderToUsersMapFuncIgnoresNonFolders(t *testing.T) {
	c := newFakeClientBuilder().Build()

	mapFunc := newFolderToUsersMapFunc(c)

	if got := mapFunc(context.Background(), &sftpgov1alpha1.SftpgoUser{}); got != nil {
		t.Errorf("mapFunc() = %v, want nil for a non-folder object", got)
	}
}
