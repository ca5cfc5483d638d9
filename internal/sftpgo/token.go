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
	"fmt"
	"net/http"
	"sync"
	"time"
)

// tokenExpiryClamp bounds how long a token is trusted. Stale server clocks
// or long-lived tokens otherwise strand the controller with an unusable
// credential until the reported expiry passes.
const tokenExpiryClamp = 30 * time.Second

// accessToken is the body of GET /api/v2/token.
type accessToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// tokenSource lazily exchanges HTTP Basic credentials for a bearer token and
// refreshes it once the clamped expiry passes. Reads share the stored token
// under a read lock; a single writer performs the exchange.
type tokenSource struct {
	client   *Client
	username string
	password string

	now func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func newTokenSource(client *Client, username, password string) *tokenSource {
	return &tokenSource{
		client:   client,
		username: username,
		password: password,
		now:      time.Now,
	}
}

// AuthHeader returns a currently-valid Authorization header value.
func (t *tokenSource) AuthHeader(ctx context.Context) (string, error) {
	t.mu.RLock()
	if t.expiresAt.After(t.now()) {
		header := "Bearer " + t.token
		t.mu.RUnlock()

		return header, nil
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	// Another caller may have refreshed while we waited for the write lock.
	if t.expiresAt.After(t.now()) {
		return "Bearer " + t.token, nil
	}

	fresh, err := t.fetch(ctx)
	if err != nil {
		return "", err
	}

	t.token = fresh.AccessToken
	t.expiresAt = fresh.ExpiresAt

	if clamped := t.now().Add(tokenExpiryClamp); clamped.Before(t.expiresAt) {
		t.expiresAt = clamped
	}

	return "Bearer " + t.token, nil
}

// Invalidate drops the stored token so the next AuthHeader call refreshes.
func (t *tokenSource) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.token = ""
	t.expiresAt = time.Time{}
}

func (t *tokenSource) fetch(ctx context.Context) (*accessToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.client.urlFor("/api/v2/token"), nil)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(t.username, t.password)

	res, err := t.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}

	token := &accessToken{}
	if err := decodeResponse(res, token); err != nil {
		return nil, fmt.Errorf("failed to acquire access token for %q: %w", t.username, err)
	}

	return token, nil
}
