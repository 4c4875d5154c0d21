// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport itself, before a request reaches
// the service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded into
	// the payload expected by the route.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzip is returned when a request declares gzip content
	// encoding but its body is not a valid gzip stream.
	ErrInvalidGzip = errors.New("invalid gzip data")

	// ErrBodyTooLarge is returned when a request body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)
