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
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// DomainResource describes the operations shared by every custom resource
// that maps to a single entity on the sftpgo management API.
//
// +kubebuilder:object:generate=false
type DomainResource interface {
	client.Object

	// GetServerReference returns the server the entity belongs to.
	GetServerReference() *ServerReference

	// GetEntityName returns the name the entity should currently have
	// server-side, taken from the spec.
	GetEntityName() string

	// HasDomainStatus reports whether the status subresource has ever been
	// written.
	HasDomainStatus() bool

	// GetLastName returns the name the entity was last created under, or ""
	// when no status exists.
	GetLastName() string

	// SetLastName records the name the entity exists under server-side,
	// allocating the status when needed.
	SetLastName(name string)

	// GetEntityID returns the server-assigned id, or nil when unknown.
	GetEntityID() *int32

	// SetEntityID records the server-assigned id.
	SetEntityID(id *int32)
}

var (
	_ DomainResource = &SftpgoUser{}
	_ DomainResource = &SftpgoFolder{}
	_ DomainResource = &SftpgoAdmin{}
)
