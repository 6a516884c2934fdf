// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business rules a diary entry must satisfy
// before it is written to storage.
//
// A [Validator] receives the value to check and, optionally, the names of
// the fields to restrict the check to. Services get validators injected so
// the rules stay out of storage and presentation code.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
