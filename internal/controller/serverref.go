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
	"fmt"
	"unicode/utf8"

	"github.com/Masterminds/goutils"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-server-operator/internal/sftpgo"
	"github.com/zlepper/sftpgo-server-operator/util"
)

// Secret keys an admin connection Secret must carry.
const (
	connectionSecretURLKey      = "url"
	connectionSecretUsernameKey = "username"
	connectionSecretPasswordKey = "password"
)

// adminSecretName is the well-known name of the credential Secret the server
// controller maintains for a SftpgoServer resource.
func adminSecretName(serverName string) string {
	return serverName + "-admin-user"
}

// ResolveAdminClient turns a ServerReference into an authorized management
// API client, going through the pool so concurrent reconciles targeting the
// same server share tokens.
func ResolveAdminClient(ctx context.Context, c client.Client, pool *sftpgo.ClientPool, namespace string, ref *sftpgov1alpha1.ServerReference) (*sftpgo.AuthorizedClient, error) {
	secretKey, err := connectionSecretKey(namespace, ref)
	if err != nil {
		return nil, err
	}

	secret := &corev1.Secret{}
	if err := c.Get(ctx, secretKey, secret); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, &UserInputError{Reason: fmt.Sprintf("connection secret %s/%s does not exist", secretKey.Namespace, secretKey.Name)}
		}

		return nil, fmt.Errorf("failed to read connection secret %s/%s: %w", secretKey.Namespace, secretKey.Name, err)
	}

	url, err := connectionSecretValue(secret, connectionSecretURLKey)
	if err != nil {
		return nil, err
	}

	username, err := connectionSecretValue(secret, connectionSecretUsernameKey)
	if err != nil {
		return nil, err
	}

	password, err := connectionSecretValue(secret, connectionSecretPasswordKey)
	if err != nil {
		return nil, err
	}

	if override := ref.OverrideValues; override != nil {
		url = util.Or(override.URL, url)
		username = util.Or(override.Username, username)
		password = util.Or(override.Password, password)
	}

	instance, err := pool.Get(secret.GetUID(), url)
	if err != nil {
		return nil, &UserInputError{Reason: err.Error()}
	}

	return instance.Authorized(username, password), nil
}

// connectionSecretKey resolves which Secret holds the admin credentials.
// Exactly one of name or connectionSecret must be set on the reference.
func connectionSecretKey(namespace string, ref *sftpgov1alpha1.ServerReference) (types.NamespacedName, error) {
	switch {
	case ref.ConnectionSecret != nil && ref.Name != "":
		return types.NamespacedName{}, &UserInputError{Reason: "sftpgoServerReference must set only one of name and connectionSecret"}
	case ref.ConnectionSecret != nil:
		return types.NamespacedName{
			Name:      ref.ConnectionSecret.Name,
			Namespace: goutils.DefaultString(ref.ConnectionSecret.Namespace, namespace),
		}, nil
	case ref.Name != "":
		return types.NamespacedName{
			Name:      adminSecretName(ref.Name),
			Namespace: goutils.DefaultString(ref.Namespace, namespace),
		}, nil
	default:
		return types.NamespacedName{}, &UserInputError{Reason: "sftpgoServerReference must set one of name and connectionSecret"}
	}
}

func connectionSecretValue(secret *corev1.Secret, key string) (string, error) {
	raw, ok := secret.Data[key]
	if !ok {
		return "", &UserInputError{Reason: fmt.Sprintf("connection secret %s/%s is missing key %q", secret.Namespace, secret.Name, key)}
	}

	if !utf8.Valid(raw) {
		return "", &UserInputError{Reason: fmt.Sprintf("connection secret %s/%s key %q is not valid UTF-8", secret.Namespace, secret.Name, key)}
	}

	return string(raw), nil
}
