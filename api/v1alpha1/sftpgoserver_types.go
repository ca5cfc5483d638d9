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

// SftpgoServerSpec is the desired state of a managed sftpgo server instance.
type SftpgoServerSpec struct {
	// Configuration is handed to the server process as environment variables.
	// +optional
	Configuration *SftpgoConfiguration `json:"configuration,omitempty"`

	// Replicas for the rendered Deployment.
	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	// Image overrides the default sftpgo container image.
	// +optional
	Image string `json:"image,omitempty"`

	// Labels are applied to every rendered child object in addition to the
	// labels the operator sets itself.
	// +optional
	Labels map[string]string `json:"labels,omitempty"`

	// NodeSelector for the rendered pods.
	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:path=sftpgoservers,scope=Namespaced,shortName=sftpgo

// SftpgoServer is a managed sftpgo server instance.
type SftpgoServer struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec SftpgoServerSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// SftpgoServerList contains a list of SftpgoServer.
type SftpgoServerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SftpgoServer `json:"items"`
}
