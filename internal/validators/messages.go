// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	"github.com/MKhiriev/go-rot13-api/internal/cipher"
	"github.com/MKhiriev/go-rot13-api/models"
)

const (
	locBody = "body"

	typeMissing     = "missing"
	typeValueError  = "value_error"
	typeJSONInvalid = "json_invalid"

	msgFieldRequired   = "Field required"
	msgEmptyText       = "Value error, Can't be empty"
	msgInvalidText     = "Value error, Only uppercase letters and spaces allowed"
	msgJSONDecodeError = "JSON decode error"
	msgInvalidValue    = "Value error, Invalid value"
)

// MissingField reports that field was absent from the body.
func MissingField(field string) models.FieldError {
	return models.FieldError{Loc: []string{locBody, field}, Msg: msgFieldRequired, Type: typeMissing}
}

// InvalidJSON reports a body that could not be decoded.
func InvalidJSON() models.FieldError {
	return models.FieldError{Loc: []string{locBody}, Msg: msgJSONDecodeError, Type: typeJSONInvalid}
}

// TextFieldError translates a cipher text check failure on field.
func TextFieldError(field string, err error) models.FieldError {
	msg := msgInvalidText
	if errors.Is(err, cipher.ErrEmptyText) {
		msg = msgEmptyText
	}

	return models.FieldError{Loc: []string{locBody, field}, Msg: msg, Type: typeValueError}
}

// MissingBody reports a request without a body.
func MissingBody() models.FieldError {
	return models.FieldError{Loc: []string{locBody}, Msg: msgFieldRequired, Type: typeMissing}
}
