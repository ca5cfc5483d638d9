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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// SftpgoFolderConfiguration defines the filesystem for the virtual folder.
// The same folder can be shared among multiple users and each user can have
// different quota limits or a different virtual path.
type SftpgoFolderConfiguration struct {
	// Name is the unique name for this virtual folder.
	Name string `json:"name"`

	// MappedPath is the absolute filesystem path to use as virtual folder.
	MappedPath string `json:"mappedPath"`

	// +optional
	Description string `json:"description,omitempty"`

	// Filesystem holds the storage details.
	// +optional
	Filesystem FileSystem `json:"filesystem,omitempty"`
}

// SftpgoFolderSpec is the desired state of a sftpgo virtual folder.
type SftpgoFolderSpec struct {
	Configuration SftpgoFolderConfiguration `json:"configuration"`

	ServerReference ServerReference `json:"sftpgoServerReference"`
}

// SftpgoFolderStatus records what the operator last created server-side.
type SftpgoFolderStatus struct {
	// LastName is the name the folder was last created under.
	LastName string `json:"lastName"`

	// ID assigned by the server.
	// +optional
	ID *int32 `json:"id,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// SftpgoFolder is a virtual folder on a sftpgo server.
type SftpgoFolder struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec SftpgoFolderSpec `json:"spec,omitempty"`

	// +optional
	Status *SftpgoFolderStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// SftpgoFolderList contains a list of SftpgoFolder.
type SftpgoFolderList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SftpgoFolder `json:"items"`
}

func (f *SftpgoFolder) GetServerReference() *ServerReference {
	return &f.Spec.ServerReference
}

func (f *SftpgoFolder) GetEntityName() string {
	return f.Spec.Configuration.Name
}

func (f *SftpgoFolder) HasDomainStatus() bool {
	return f.Status != nil
}

func (f *SftpgoFolder) GetLastName() string {
	if f.Status == nil {
		return ""
	}

	return f.Status.LastName
}

func (f *SftpgoFolder) SetLastName(name string) {
	if f.Status == nil {
		f.Status = &SftpgoFolderStatus{}
	}

	f.Status.LastName = name
}

func (f *SftpgoFolder) GetEntityID() *int32 {
	if f.Status == nil {
		return nil
	}

	return f.Status.ID
}

func (f *SftpgoFolder) SetEntityID(id *int32) {
	if f.Status == nil {
		f.Status = &SftpgoFolderStatus{}
	}

	f.Status.ID = id
}
