// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-rot13-api/internal/cipher"
	"github.com/MKhiriev/go-rot13-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func newTestValidator(t *testing.T) Validator {
	t.Helper()
	v, err := NewRequestValidator()
	require.NoError(t, err)
	return v
}

func TestRequestValidator_TextRequest(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		req     models.TextRequest
		wantErr *models.FieldError
	}{
		{name: "valid", req: models.TextRequest{Text: ptr("HELLO WORLD")}},
		{name: "single space", req: models.TextRequest{Text: ptr(" ")}},
		{
			name:    "missing",
			req:     models.TextRequest{},
			wantErr: &models.FieldError{Loc: []string{"body", "text"}, Msg: "Field required", Type: "missing"},
		},
		{
			name:    "empty",
			req:     models.TextRequest{Text: ptr("")},
			wantErr: &models.FieldError{Loc: []string{"body", "text"}, Msg: "Value error, Can't be empty", Type: "value_error"},
		},
		{
			name:    "lowercase",
			req:     models.TextRequest{Text: ptr("hello")},
			wantErr: &models.FieldError{Loc: []string{"body", "text"}, Msg: "Value error, Only uppercase letters and spaces allowed", Type: "value_error"},
		},
		{
			name:    "digits",
			req:     models.TextRequest{Text: ptr("ABC1")},
			wantErr: &models.FieldError{Loc: []string{"body", "text"}, Msg: "Value error, Only uppercase letters and spaces allowed", Type: "value_error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalidRequest)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, []models.FieldError{*tt.wantErr}, vErr.Fields)
		})
	}
}

func TestRequestValidator_LoginRequest(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(context.Background(), models.LoginRequest{Username: "testuser", Password: "testuser123"})
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.LoginRequest{})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []models.FieldError{MissingField("username"), MissingField("password")}, vErr.Fields)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(context.Background(), struct{ Name string }{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestTextFieldError(t *testing.T) {
	assert.Equal(t, "Value error, Can't be empty", TextFieldError("text", cipher.ErrEmptyText).Msg)
	assert.Equal(t, "Value error, Only uppercase letters and spaces allowed", TextFieldError("text", cipher.ErrInvalidCharacter).Msg)
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError(MissingField("text"))
	assert.Equal(t, "invalid request: body.text: Field required", err.Error())
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
