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

// AdminPermission is a single sftpgo permission token for administrators.
// +kubebuilder:validation:Enum=all;add_users;edit_users;del_users;view_users;view_conns;close_conns;view_status;manage_admins;manage_groups;manage_apikeys;quota_scans;manage_system;manage_defender;view_defender;retention_checks;metadata_checks;view_events;manage_event_rules;manage_roles;manage_ip_lists
type AdminPermission string

const (
	AdminPermissionAll              AdminPermission = "all"
	AdminPermissionAddUsers         AdminPermission = "add_users"
	AdminPermissionEditUsers        AdminPermission = "edit_users"
	AdminPermissionDelUsers         AdminPermission = "del_users"
	AdminPermissionViewUsers        AdminPermission = "view_users"
	AdminPermissionViewConns        AdminPermission = "view_conns"
	AdminPermissionCloseConns       AdminPermission = "close_conns"
	AdminPermissionViewStatus       AdminPermission = "view_status"
	AdminPermissionManageAdmins     AdminPermission = "manage_admins"
	AdminPermissionManageGroups     AdminPermission = "manage_groups"
	AdminPermissionManageApikeys    AdminPermission = "manage_apikeys"
	AdminPermissionQuotaScans       AdminPermission = "quota_scans"
	AdminPermissionManageSystem     AdminPermission = "manage_system"
	AdminPermissionManageDefender   AdminPermission = "manage_defender"
	AdminPermissionViewDefender     AdminPermission = "view_defender"
	AdminPermissionRetentionChecks  AdminPermission = "retention_checks"
	AdminPermissionMetadataChecks   AdminPermission = "metadata_checks"
	AdminPermissionViewEvents       AdminPermission = "view_events"
	AdminPermissionManageEventRules AdminPermission = "manage_event_rules"
	AdminPermissionManageRoles      AdminPermission = "manage_roles"
	AdminPermissionManageIPLists    AdminPermission = "manage_ip_lists"
)

// WireValue returns the token the management API expects. "all" is spelled
// "*" on the wire.
func (p AdminPermission) WireValue() string {
	if p == AdminPermissionAll {
		return "*"
	}

	return string(p)
}

// SftpgoAdminConfiguration carries the fields forwarded to the management API.
type SftpgoAdminConfiguration struct {
	// Username of the administrator.
	Username string `json:"username"`

	// Description is optional, for example the admin full name.
	// +optional
	Description string `json:"description,omitempty"`

	// Password of the administrator. It is sent on every create and update;
	// the server never returns it, so a password changed outside the operator
	// is not detected.
	Password string `json:"password"`

	// +optional
	Enabled *EnabledStatus `json:"enabled,omitempty"`

	// +optional
	Email string `json:"email,omitempty"`

	Permissions []AdminPermission `json:"permissions"`

	// Role restricts the admin to users with the same role. Role admins
	// cannot have the following permissions: "manage_admins",
	// "manage_apikeys", "manage_system", "manage_event_rules",
	// "manage_roles", "manage_ip_lists".
	// +optional
	Role string `json:"role,omitempty"`
}

// SftpgoAdminSpec is the desired state of a sftpgo administrator account.
type SftpgoAdminSpec struct {
	Configuration SftpgoAdminConfiguration `json:"configuration"`

	ServerReference ServerReference `json:"sftpgoServerReference"`
}

// SftpgoAdminStatus records what the operator last created server-side.
type SftpgoAdminStatus struct {
	// LastUsername is the username the admin was last created under.
	LastUsername string `json:"lastUsername"`

	// ID assigned by the server.
	// +optional
	ID *int32 `json:"id,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// SftpgoAdmin is an administrator account on a sftpgo server.
type SftpgoAdmin struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec SftpgoAdminSpec `json:"spec,omitempty"`

	// +optional
	Status *SftpgoAdminStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// SftpgoAdminList contains a list of SftpgoAdmin.
type SftpgoAdminList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SftpgoAdmin `json:"items"`
}

func (a *SftpgoAdmin) GetServerReference() *ServerReference {
	return &a.Spec.ServerReference
}

func (a *SftpgoAdmin) GetEntityName() string {
	return a.Spec.Configuration.Username
}

func (a *SftpgoAdmin) HasDomainStatus() bool {
	return a.Status != nil
}

func (a *SftpgoAdmin) GetLastName() string {
	if a.Status == nil {
		return ""
	}

	return a.Status.LastUsername
}

func (a *SftpgoAdmin) SetLastName(name string) {
	if a.Status == nil {
		a.Status = &SftpgoAdminStatus{}
	}

	a.Status.LastUsername = name
}

func (a *SftpgoAdmin) GetEntityID() *int32 {
	if a.Status == nil {
		return nil
	}

	return a.Status.ID
}

func (a *SftpgoAdmin) SetEntityID(id *int32) {
	if a.Status == nil {
		a.Status = &SftpgoAdminStatus{}
	}

	a.Status.ID = id
}
