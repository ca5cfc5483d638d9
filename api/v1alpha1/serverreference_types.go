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

// ConnectionSecret points at a Secret carrying the `url`, `username` and
// `password` keys needed to reach a sftpgo management API.
type ConnectionSecret struct {
	// Name is the name of the Secret.
	Name string `json:"name"`

	// Namespace of the Secret. Defaults to the namespace of the referring
	// resource.
	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// ConnectionOverride replaces individual values resolved from the connection
// Secret. Useful when the in-cluster Service address is not reachable from
// where the operator runs.
type ConnectionOverride struct {
	// +optional
	URL string `json:"url,omitempty"`
	// +optional
	Username string `json:"username,omitempty"`
	// +optional
	Password string `json:"password,omitempty"`
}

// ServerReference selects the sftpgo server instance a resource belongs to.
// Exactly one of Name or ConnectionSecret must be set.
type ServerReference struct {
	// Name of a SftpgoServer resource managed by this operator. The admin
	// credentials are read from the `<name>-admin-user` Secret the server
	// controller maintains.
	// +optional
	Name string `json:"name,omitempty"`

	// Namespace of the referenced SftpgoServer. Defaults to the namespace of
	// the referring resource.
	// +optional
	Namespace string `json:"namespace,omitempty"`

	// ConnectionSecret points at an explicit credentials Secret for servers
	// not managed by this operator.
	// +optional
	ConnectionSecret *ConnectionSecret `json:"connectionSecret,omitempty"`

	// OverrideValues replaces any of the resolved connection values.
	// +optional
	OverrideValues *ConnectionOverride `json:"overrideValues,omitempty"`
}
