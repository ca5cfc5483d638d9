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

package sftpgo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeAPI is a minimal in-memory rendition of the management API's user
// endpoints, just enough to drive the generic CRUD helpers.
type fakeAPI struct {
	mu     sync.Mutex
	users  map[string]*UserResponse
	nextID int32

	tokenCalls  int
	rejectToken string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{users: map[string]*UserResponse{}, nextID: 1}
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v2/token" {
			f.mu.Lock()
			f.tokenCalls++
			calls := f.tokenCalls
			f.mu.Unlock()

			_ = json.NewEncoder(w).Encode(accessToken{
				AccessToken: "token-" + strings.Repeat("x", calls),
				ExpiresAt:   time.Now().Add(time.Hour),
			})

			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		auth := r.Header.Get("Authorization")
		if auth == "" || auth == "Bearer "+f.rejectToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(GenericResponseBody{Error: "invalid token"})

			return
		}

		name := strings.TrimPrefix(r.URL.Path, "/api/v2/users")
		name = strings.TrimPrefix(name, "/")

		switch r.Method {
		case http.MethodGet:
			user, ok := f.users[name]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(GenericResponseBody{Error: "not found"})

				return
			}

			_ = json.NewEncoder(w).Encode(user)
		case http.MethodPost:
			req := &UserRequest{}
			_ = json.NewDecoder(r.Body).Decode(req)

			user := &UserResponse{ID: f.nextID, Username: req.Username, HomeDir: req.HomeDir}
			f.nextID++
			f.users[req.Username] = user

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(user)
		case http.MethodPut:
			if _, ok := f.users[name]; !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(GenericResponseBody{Error: "not found"})

				return
			}

			req := &UserRequest{}
			_ = json.NewDecoder(r.Body).Decode(req)
			f.users[name].HomeDir = req.HomeDir

			_ = json.NewEncoder(w).Encode(GenericResponseBody{Message: "updated"})
		case http.MethodDelete:
			if _, ok := f.users[name]; !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(GenericResponseBody{Error: "not found"})

				return
			}

			delete(f.users, name)
			_ = json.NewEncoder(w).Encode(GenericResponseBody{Message: "deleted"})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func newAuthorizedTestClient(t *testing.T, api *fakeAPI) *AuthorizedClient {
	t.Helper()

	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient() returned error: %v", err)
	}

	return client.Authorized("admin", "secret")
}

func TestSyncCreatesAbsentEntity(t *testing.T) {
	api := newFakeAPI()
	ac := newAuthorizedTestClient(t, api)

	id, err := Sync[UserRequest, UserResponse](context.Background(), ac, "users", UserRequest{Username: "alice", HomeDir: "/srv/alice"})
	if err != nil {
		t.Fatalf("Sync() returned error: %v", err)
	}

	if id == nil || *id != 1 {
		t.Fatalf("Sync() id = %v, want 1", id)
	}

	if _, ok := api.users["alice"]; !ok {
		t.Errorf("user was not created server-side")
	}
}

func TestSyncUpdatesExistingEntity(t *testing.T) {
	api := newFakeAPI()
	api.users["alice"] = &UserResponse{ID: 7, Username: "alice", HomeDir: "/srv/old"}

	ac := newAuthorizedTestClient(t, api)

	id, err := Sync[UserRequest, UserResponse](context.Background(), ac, "users", UserRequest{Username: "alice", HomeDir: "/srv/new"})
	if err != nil {
		t.Fatalf("Sync() returned error: %v", err)
	}

	if id == nil || *id != 7 {
		t.Fatalf("Sync() id = %v, want 7", id)
	}

	if got := api.users["alice"].HomeDir; got != "/srv/new" {
		t.Errorf("user home dir = %q, want updated value", got)
	}
}

func TestGetAbsentEntityIsNil(t *testing.T) {
	ac := newAuthorizedTestClient(t, newFakeAPI())

	user, err := ac.GetUser(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetUser() returned error: %v", err)
	}

	if user != nil {
		t.Errorf("GetUser() = %v, want nil for absent user", user)
	}
}

func TestDeleteAbsentEntitySucceeds(t *testing.T) {
	ac := newAuthorizedTestClient(t, newFakeAPI())

	if err := ac.DeleteUser(context.Background(), "ghost"); err != nil {
		t.Errorf("DeleteUser() returned error for absent user: %v", err)
	}
}

func TestUnauthorizedResponseRefreshesTokenOnce(t *testing.T) {
	api := newFakeAPI()
	api.users["alice"] = &UserResponse{ID: 1, Username: "alice"}
	// The first issued token is rejected, forcing one invalidate+retry.
	api.rejectToken = "token-x"

	ac := newAuthorizedTestClient(t, api)

	user, err := ac.GetUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUser() returned error: %v", err)
	}

	if user == nil || user.ID != 1 {
		t.Fatalf("GetUser() = %v, want alice with id 1", user)
	}

	if api.tokenCalls != 2 {
		t.Errorf("token endpoint was called %d times, want 2 (initial + refresh)", api.tokenCalls)
	}
}
