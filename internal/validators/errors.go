// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-rot13-api/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	// ErrInvalidRequest is matched by every *ValidationError.
	ErrInvalidRequest = errors.New("invalid request")
)

// ValidationError carries the per-field failures of a rejected request.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return "invalid request: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// NewValidationError wraps the given field errors.
func NewValidationError(fields ...models.FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
