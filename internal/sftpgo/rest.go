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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// do issues an authorized request. A 401 response invalidates the cached
// token and the request is retried once with a fresh one; a second 401 is
// returned to the caller.
func (ac *AuthorizedClient) do(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	res, err := ac.send(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	if res.StatusCode == http.StatusUnauthorized {
		_ = res.Body.Close()
		ac.token.Invalidate()

		res, err = ac.send(ctx, method, endpoint, body)
		if err != nil {
			return err
		}
	}

	return decodeResponse(res, out)
}

func (ac *AuthorizedClient) send(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, error) {
	var payload bytes.Buffer

	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, ac.urlFor(endpoint), &payload)
	if err != nil {
		return nil, err
	}

	header, err := ac.token.AuthHeader(ctx)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", header)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ac.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("management API request failed: %w", err)
	}

	return res, nil
}

// getEntity reads one entity by name. An absent entity is (nil, nil).
func getEntity[T any](ctx context.Context, ac *AuthorizedClient, basePath, name string) (*T, error) {
	out := new(T)

	err := ac.do(ctx, http.MethodGet, entityPath(basePath, name), nil, out)
	if IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return out, nil
}

// createEntity POSTs a new entity and returns the server's view of it.
func createEntity[TReq, TResp any](ctx context.Context, ac *AuthorizedClient, basePath string, req *TReq) (*TResp, error) {
	out := new(TResp)

	if err := ac.do(ctx, http.MethodPost, "/api/v2/"+basePath, req, out); err != nil {
		return nil, err
	}

	return out, nil
}

// updateEntity PUTs an existing entity under name.
func updateEntity[TReq any](ctx context.Context, ac *AuthorizedClient, basePath, name string, req *TReq) error {
	body := &GenericResponseBody{}

	return ac.do(ctx, http.MethodPut, entityPath(basePath, name), req, body)
}

// deleteEntity removes an entity. Deleting an absent entity succeeds.
func deleteEntity(ctx context.Context, ac *AuthorizedClient, basePath, name string) error {
	err := ac.do(ctx, http.MethodDelete, entityPath(basePath, name), nil, &GenericResponseBody{})
	if IsNotFound(err) {
		return nil
	}

	return err
}

func entityPath(basePath, name string) string {
	return "/api/v2/" + basePath + "/" + url.PathEscape(name)
}

// EntityRequest is a creatable management-API payload.
type EntityRequest interface {
	EntityName() string
}

// EntityResponse is the server's view of a stored entity.
type EntityResponse interface {
	EntityID() int32
}

// Sync converges the server-side entity named by req: an absent entity is
// created, an existing one updated. The returned id is the server-assigned
// one in both cases.
func Sync[TReq EntityRequest, TResp EntityResponse](ctx context.Context, ac *AuthorizedClient, basePath string, req TReq) (*int32, error) {
	name := req.EntityName()

	existing, err := getEntity[TResp](ctx, ac, basePath, name)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		created, err := createEntity[TReq, TResp](ctx, ac, basePath, &req)
		if err != nil {
			return nil, err
		}

		id := (*created).EntityID()

		return &id, nil
	}

	if err := updateEntity(ctx, ac, basePath, name, &req); err != nil {
		return nil, err
	}

	id := (*existing).EntityID()

	return &id, nil
}
