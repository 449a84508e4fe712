// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request bodies before they reach the
// services and reports failures as field errors of the form
// {"loc": ["body", "<field>"], "msg": ..., "type": ...}.
package validators

import "context"

// Validator validates a value, optionally only the named fields of it.
// A failed check is reported as a *ValidationError.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
