// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests before they reach storage.
//
// A Validator receives a request model and, optionally, the names of the
// fields to check. Without field names a default set is validated. The first
// failing rule is returned as one of the sentinel errors in this package, so
// callers can map it to a response with [errors.Is].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
