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

// EnabledStatus marks an account as enabled or disabled server-side.
// +kubebuilder:validation:Enum=Enabled;Disabled
type EnabledStatus string

const (
	Enabled  EnabledStatus = "Enabled"
	Disabled EnabledStatus = "Disabled"
)

// UserPermission is a single sftpgo permission token for users.
// +kubebuilder:validation:Enum=all;list;download;upload;overwrite;create_dirs;rename;rename_files;rename_dirs;delete;delete_files;delete_dirs;create_symlinks;chmod;chown;chtimes
type UserPermission string

const (
	UserPermissionAll            UserPermission = "all"
	UserPermissionList           UserPermission = "list"
	UserPermissionDownload       UserPermission = "download"
	UserPermissionUpload         UserPermission = "upload"
	UserPermissionOverwrite      UserPermission = "overwrite"
	UserPermissionCreateDirs     UserPermission = "create_dirs"
	UserPermissionRename         UserPermission = "rename"
	UserPermissionRenameFiles    UserPermission = "rename_files"
	UserPermissionRenameDirs     UserPermission = "rename_dirs"
	UserPermissionDelete         UserPermission = "delete"
	UserPermissionDeleteFiles    UserPermission = "delete_files"
	UserPermissionDeleteDirs     UserPermission = "delete_dirs"
	UserPermissionCreateSymlinks UserPermission = "create_symlinks"
	UserPermissionChmod          UserPermission = "chmod"
	UserPermissionChown          UserPermission = "chown"
	UserPermissionChtimes        UserPermission = "chtimes"
)

// WireValue returns the token the management API expects. "all" is spelled
// "*" on the wire.
func (p UserPermission) WireValue() string {
	if p == UserPermissionAll {
		return "*"
	}

	return string(p)
}

// DirectoryPermission grants a permission set on a single directory.
type DirectoryPermission struct {
	Path        string           `json:"path"`
	Permissions []UserPermission `json:"permissions"`
}

// VirtualFolderReference mounts a SftpgoFolder into a user's directory tree.
type VirtualFolderReference struct {
	// Name is the kubernetes resource name of the virtual folder.
	Name string `json:"name"`

	// Namespace the folder is defined in, if different from the namespace of
	// this resource.
	// +optional
	Namespace string `json:"namespace,omitempty"`

	// VirtualPath is the path to use inside the virtual folder.
	VirtualPath string `json:"virtualPath"`

	// QuotaSize as size in bytes. 0 means unlimited, -1 means included in
	// user quota. Please note that quota is updated if files are
	// added/removed via SFTPGo otherwise a quota scan or a manual quota
	// update is needed.
	// +optional
	QuotaSize *int64 `json:"quotaSize,omitempty"`

	// QuotaFiles as number of files. 0 means unlimited, -1 means included in
	// user quota. Please note that quota is updated if files are
	// added/removed via SFTPGo otherwise a quota scan or a manual quota
	// update is needed.
	// +optional
	QuotaFiles *int32 `json:"quotaFiles,omitempty"`
}

// SftpgoUserConfiguration carries the fields forwarded to the management API.
type SftpgoUserConfiguration struct {
	// Username of the user.
	Username string `json:"username"`

	// Password of the user. It is sent on every create and update; the
	// server never returns it, so a password changed outside the operator is
	// not detected.
	Password string `json:"password"`

	// +optional
	Enabled *EnabledStatus `json:"enabled,omitempty"`

	// GlobalPermissions apply to the whole directory tree. An empty list
	// grants everything.
	// +optional
	GlobalPermissions []UserPermission `json:"globalPermissions,omitempty"`

	// +optional
	PerDirectoryPermissions []DirectoryPermission `json:"perDirectoryPermissions,omitempty"`

	// +optional
	Filesystem FileSystem `json:"filesystem,omitempty"`

	HomeDir string `json:"homeDir"`

	// +optional
	VirtualFolders []VirtualFolderReference `json:"virtualFolders,omitempty"`
}

// SftpgoUserSpec is the desired state of a sftpgo user account.
type SftpgoUserSpec struct {
	Configuration SftpgoUserConfiguration `json:"configuration"`

	// DisconnectOnChange forces the user to login again, if connected, and so
	// to use the new configuration.
	// +optional
	DisconnectOnChange *bool `json:"disconnectOnChange,omitempty"`

	ServerReference ServerReference `json:"sftpgoServerReference"`
}

// SftpgoUserStatus records what the operator last created server-side.
type SftpgoUserStatus struct {
	// LastUsername is the username the user was last created under.
	// Usernames are primary keys server-side, so a spec rename is a
	// delete+create.
	LastUsername string `json:"lastUsername"`

	// ID assigned by the server.
	// +optional
	ID *int32 `json:"id,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// SftpgoUser is a user account on a sftpgo server.
type SftpgoUser struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec SftpgoUserSpec `json:"spec,omitempty"`

	// +optional
	Status *SftpgoUserStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// SftpgoUserList contains a list of SftpgoUser.
type SftpgoUserList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SftpgoUser `json:"items"`
}

func (u *SftpgoUser) GetServerReference() *ServerReference {
	return &u.Spec.ServerReference
}

func (u *SftpgoUser) GetEntityName() string {
	return u.Spec.Configuration.Username
}

func (u *SftpgoUser) HasDomainStatus() bool {
	return u.Status != nil
}

func (u *SftpgoUser) GetLastName() string {
	if u.Status == nil {
		return ""
	}

	return u.Status.LastUsername
}

func (u *SftpgoUser) SetLastName(name string) {
	if u.Status == nil {
		u.Status = &SftpgoUserStatus{}
	}

	u.Status.LastUsername = name
}

func (u *SftpgoUser) GetEntityID() *int32 {
	if u.Status == nil {
		return nil
	}

	return u.Status.ID
}

func (u *SftpgoUser) SetEntityID(id *int32) {
	if u.Status == nil {
		u.Status = &SftpgoUserStatus{}
	}

	u.Status.ID = id
}
