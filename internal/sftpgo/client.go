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

// Package sftpgo talks to the management API of a sftpgo instance.
package sftpgo

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// Client is the unauthenticated client for a single sftpgo instance. It owns
// the base URL and the HTTP client, and caches one authorized client per
// admin identity.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client

	mu         sync.RWMutex
	authorized map[string]*AuthorizedClient
}

// NewClient builds a client for the management API rooted at baseURL.
func NewClient(baseURL string) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid management API url %q: %w", baseURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid management API url %q: unsupported scheme %q", baseURL, parsed.Scheme)
	}

	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		authorized: map[string]*AuthorizedClient{},
	}, nil
}

// urlFor joins endpoint onto the base URL.
func (c *Client) urlFor(endpoint string) string {
	ref := &url.URL{Path: endpoint}

	return c.baseURL.ResolveReference(ref).String()
}

// Authorized returns the cached authorized client for username, creating it
// on first use. The password is captured at creation time; an in-place
// credential edit only takes effect once the process restarts, since the
// cache key (the username) does not change.
func (c *Client) Authorized(username, password string) *AuthorizedClient {
	c.mu.RLock()
	ac, ok := c.authorized[username]
	c.mu.RUnlock()

	if ok {
		return ac
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ac, ok := c.authorized[username]; ok {
		return ac
	}

	ac = &AuthorizedClient{
		Client: c,
		token:  newTokenSource(c, username, password),
	}
	c.authorized[username] = ac

	return ac
}

// AuthorizedClient couples an instance client with a refreshable bearer
// token for one admin identity.
type AuthorizedClient struct {
	*Client

	token *tokenSource
}
