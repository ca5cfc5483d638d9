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
	"sync"

	"k8s.io/apimachinery/pkg/types"
)

// ClientPool caches one instance client per target server for the lifetime
// of the controller process. Instances are keyed by the UID of the Secret
// holding their admin credentials: stable under rename and unique across the
// cluster, so a delete+recreate of the Secret gets a fresh entry.
type ClientPool struct {
	mu      sync.Mutex
	clients map[types.UID]*Client
}

// NewClientPool returns an empty pool.
func NewClientPool() *ClientPool {
	return &ClientPool{clients: map[types.UID]*Client{}}
}

// Get returns the cached instance client for key, building one for url on
// first use.
func (p *ClientPool) Get(key types.UID, url string) (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[key]; ok {
		return client, nil
	}

	client, err := NewClient(url)
	if err != nil {
		return nil, err
	}

	p.clients[key] = client

	return client, nil
}
