// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it leaves the dashboard.
//
// Validators are injected into services; handlers never call them directly.
// The optional field list restricts a check to named fields, which the
// registration form uses for per-field error messages.
package validators

import "context"

// Validator validates an arbitrary value, optionally limited to the named
// fields. All failures are returned joined into a single error.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
