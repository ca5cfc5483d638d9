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
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTokenServer(t *testing.T, requests *atomic.Int64, expiresIn time.Duration) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/token" {
			http.NotFound(w, r)
			return
		}

		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(GenericResponseBody{Error: "missing credentials"})

			return
		}

		count := requests.Add(1)

		_ = json.NewEncoder(w).Encode(accessToken{
			AccessToken: fmt.Sprintf("token-%d", count),
			ExpiresAt:   time.Now().Add(expiresIn),
		})
	}))

	t.Cleanup(server.Close)

	return server
}

func TestAuthHeaderIsLazyAndCached(t *testing.T) {
	var requests atomic.Int64

	server := newTokenServer(t, &requests, time.Hour)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient() returned error: %v", err)
	}

	source := newTokenSource(client, "admin", "secret")

	if requests.Load() != 0 {
		t.Fatalf("token was fetched before first use")
	}

	header, err := source.AuthHeader(context.Background())
	if err != nil {
		t.Fatalf("AuthHeader() returned error: %v", err)
	}

	if header != "Bearer token-1" {
		t.Errorf("AuthHeader() = %q, want %q", header, "Bearer token-1")
	}

	// A second call within the expiry window must not hit the server.
	if _, err := source.AuthHeader(context.Background()); err != nil {
		t.Fatalf("AuthHeader() returned error: %v", err)
	}

	if got := requests.Load(); got != 1 {
		t.Errorf("token endpoint was called %d times, want 1", got)
	}
}

func TestAuthHeaderClampsExpiry(t *testing.T) {
	var requests atomic.Int64

	// The server hands out very long-lived tokens; the holder must not
	// trust them for more than the clamp window.
	server := newTokenServer(t, &requests, 24*time.Hour)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient() returned error: %v", err)
	}

	source := newTokenSource(client, "admin", "secret")

	now := time.Now()
	source.now = func() time.Time { return now }

	if _, err := source.AuthHeader(context.Background()); err != nil {
		t.Fatalf("AuthHeader() returned error: %v", err)
	}

	// Just past the clamp the stored token must refresh.
	now = now.Add(tokenExpiryClamp + time.Second)

	header, err := source.AuthHeader(context.Background())
	if err != nil {
		t.Fatalf("AuthHeader() returned error: %v", err)
	}

	if header != "Bearer token-2" {
		t.Errorf("AuthHeader() = %q, want refreshed token-2", header)
	}

	if got := requests.Load(); got != 2 {
		t.Errorf("token endpoint was called %d times, want 2", got)
	}
}

func TestAuthHeaderRefreshStampede(t *testing.T) {
	var requests atomic.Int64

	server := newTokenServer(t, &requests, time.Hour)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient() returned error: %v", err)
	}

	source := newTokenSource(client, "admin", "secret")

	const callers = 100

	var wg sync.WaitGroup

	errs := make([]error, callers)
	headers := make([]string, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			headers[i], errs[i] = source.AuthHeader(context.Background())
		}(i)
	}

	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("AuthHeader() call %d returned error: %v", i, errs[i])
		}

		if headers[i] != "Bearer token-1" {
			t.Errorf("AuthHeader() call %d = %q, want %q", i, headers[i], "Bearer token-1")
		}
	}

	if got := requests.Load(); got != 1 {
		t.Errorf("token endpoint was called %d times for %d concurrent callers, want 1", got, callers)
	}
}

func TestInvalidateForcesRefresh(t *testing.T) {
	var requests atomic.Int64

	server := newTokenServer(t, &requests, time.Hour)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient() returned error: %v", err)
	}

	source := newTokenSource(client, "admin", "secret")

	if _, err := source.AuthHeader(context.Background()); err != nil {
		t.Fatalf("AuthHeader() returned error: %v", err)
	}

	source.Invalidate()

	header, err := source.AuthHeader(context.Background())
	if err != nil {
		t.Fatalf("AuthHeader() returned error: %v", err)
	}

	if header != "Bearer token-2" {
		t.Errorf("AuthHeader() = %q, want refreshed token-2", header)
	}
}
