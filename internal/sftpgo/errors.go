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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// GenericResponseBody is the error/confirmation body the management API
// returns for non-2xx responses and for updates.
type GenericResponseBody struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// APIError is a structured non-2xx response from the management API.
type APIError struct {
	StatusCode int
	Body       GenericResponseBody
}

func (e *APIError) Error() string {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Sprintf("unauthorized: %s", e.Body.Error)
	case http.StatusBadRequest:
		return fmt.Sprintf("bad request: %s", e.Body.Error)
	case http.StatusInternalServerError:
		return fmt.Sprintf("internal server error: %s", e.Body.Error)
	default:
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body.Error)
	}
}

// IsUnauthorized reports whether err is a 401 from the management API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the management API.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// decodeResponse unmarshals a 2xx body into out, or converts any other
// status into an *APIError carrying the server-provided message.
func decodeResponse(res *http.Response, out interface{}) error {
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		if out == nil {
			_, err := io.Copy(io.Discard, res.Body)
			return err
		}

		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}

		return nil
	}

	apiErr := &APIError{StatusCode: res.StatusCode}
	// A body that is not the documented json shape still yields a usable
	// error carrying the status code.
	_ = json.NewDecoder(res.Body).Decode(&apiErr.Body)

	return apiErr
}
