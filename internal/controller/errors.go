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
	"errors"
	"fmt"
)

// NotReadyError signals that a referenced dependent exists but has not been
// materialized server-side yet. The reconcile is requeued; the cross-kind
// watch shortens the wait once the dependent becomes ready.
type NotReadyError struct {
	Reason string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("dependent resource is not ready: %s", e.Reason)
}

// IsNotReady reports whether err is a *NotReadyError.
func IsNotReady(err error) bool {
	var notReady *NotReadyError

	return errors.As(err, &notReady)
}

// UserInputError marks contradictory or missing fields on a custom resource
// or its referenced Secret. It does not clear until the author fixes the
// resource.
type UserInputError struct {
	Reason string
}

func (e *UserInputError) Error() string {
	return fmt.Sprintf("invalid resource: %s", e.Reason)
}

// IsUserInput reports whether err is a *UserInputError.
func IsUserInput(err error) bool {
	var userInput *UserInputError

	return errors.As(err, &userInput)
}
