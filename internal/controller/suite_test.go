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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	sftpgov1alpha1 "github.com/zlepper/sftpgo-server-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-server-operator/internal/sftpgo"
)

const testNamespace = "test-namespace"

func setupScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(sftpgov1alpha1.AddToScheme(scheme))

	return scheme
}

func newFakeClientBuilder() *fake.ClientBuilder {
	return fake.NewClientBuilder().
		WithScheme(setupScheme()).
		WithStatusSubresource(&sftpgov1alpha1.SftpgoUser{}, &sftpgov1alpha1.SftpgoFolder{}, &sftpgov1alpha1.SftpgoAdmin{})
}

// fakeManagementAPI is an in-memory sftpgo management API covering the token
// endpoint and named CRUD for users, folders and admins. It records every
// mutation so tests can assert on call order and payloads.
type fakeManagementAPI struct {
	mu       sync.Mutex
	entities map[string]map[string]int32
	nextID   int32

	Creates []string
	Updates []string
	Deletes []string
	Bodies  map[string]string
}

func newFakeManagementAPI() *fakeManagementAPI {
	return &fakeManagementAPI{
		entities: map[string]map[string]int32{
			"users":   {},
			"folders": {},
			"admins":  {},
		},
		nextID: 1,
		Bodies: map[string]string{},
	}
}

func (f *fakeManagementAPI) start(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)

	return server
}

func (f *fakeManagementAPI) put(kind, name string, id int32) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entities[kind][name] = id
}

func (f *fakeManagementAPI) handler() http.Handler {
	writeJSON := func(w http.ResponseWriter, status int, body interface{}) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v2/token" {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"access_token": "test-token",
				"expires_at":   time.Now().Add(time.Hour).Format(time.RFC3339),
			})

			return
		}

		parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/api/v2/"), "/", 2)
		kind := parts[0]

		name := ""
		if len(parts) == 2 {
			name = parts[1]
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		store, ok := f.entities[kind]
		if !ok {
			writeJSON(w, http.StatusNotFound, sftpgo.GenericResponseBody{Error: "unknown path"})
			return
		}

		switch r.Method {
		case http.MethodGet:
			id, ok := store[name]
			if !ok {
				writeJSON(w, http.StatusNotFound, sftpgo.GenericResponseBody{Error: "not found"})
				return
			}

			writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "username": name, "name": name})
		case http.MethodPost:
			payload := map[string]interface{}{}
			_ = json.NewDecoder(r.Body).Decode(&payload)

			entityName, _ := payload["username"].(string)
			if entityName == "" {
				entityName, _ = payload["name"].(string)
			}

			id := f.nextID
			f.nextID++
			store[entityName] = id

			raw, _ := json.Marshal(payload)
			f.Creates = append(f.Creates, kind+"/"+entityName)
			f.Bodies[kind+"/"+entityName] = string(raw)

			writeJSON(w, http.StatusCreated, map[string]interface{}{"id": id, "username": entityName, "name": entityName})
		case http.MethodPut:
			if _, ok := store[name]; !ok {
				writeJSON(w, http.StatusNotFound, sftpgo.GenericResponseBody{Error: "not found"})
				return
			}

			f.Updates = append(f.Updates, kind+"/"+name)

			writeJSON(w, http.StatusOK, sftpgo.GenericResponseBody{Message: "updated"})
		case http.MethodDelete:
			if _, ok := store[name]; !ok {
				writeJSON(w, http.StatusNotFound, sftpgo.GenericResponseBody{Error: "not found"})
				return
			}

			delete(store, name)
			f.Deletes = append(f.Deletes, kind+"/"+name)

			writeJSON(w, http.StatusOK, sftpgo.GenericResponseBody{Message: "deleted"})
		default:
			writeJSON(w, http.StatusMethodNotAllowed, sftpgo.GenericResponseBody{Error: "method not allowed"})
		}
	})
}

// newConnectionSecret builds the Secret a ServerReference with name
// "example" resolves to, pointing at the fake management API.
func newConnectionSecret(url string) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "example-admin-user",
			Namespace: testNamespace,
			UID:       "connection-secret-uid",
		},
		Data: map[string][]byte{
			"url":      []byte(url),
			"username": []byte("admin"),
			"password": []byte("secret"),
		},
	}
}

func exampleServerReference() sftpgov1alpha1.ServerReference {
	return sftpgov1alpha1.ServerReference{Name: "example"}
}

func newTestPool() *sftpgo.ClientPool {
	return sftpgo.NewClientPool()
}
