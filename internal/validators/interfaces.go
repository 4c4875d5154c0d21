// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the payloads accepted by the fitness tracker
// before any record is written.
//
// A Validator is injected into the services. Services call Validate with the
// payload and, optionally, the names of the fields to check; with no names
// every required field of the payload is checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
