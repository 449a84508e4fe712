// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-rot13-api/internal/cipher"
	"github.com/MKhiriev/go-rot13-api/models"
	"github.com/go-playground/validator/v10"
)

// TagROT13Text is the struct tag accepting only non-empty A-Z and space text.
const TagROT13Text = "rot13text"

// RequestValidator validates request models with go-playground/validator.
//
// Field names in reports come from the json tag, falling back to the form
// tag, so they match what the client actually sent.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() (Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(fieldName)
	if err := v.RegisterValidation(TagROT13Text, isROT13Text); err != nil {
		return nil, fmt.Errorf("error registering %s validation: %w", TagROT13Text, err)
	}

	return &RequestValidator{validate: v}, nil
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.TextRequest, *models.TextRequest, models.LoginRequest, *models.LoginRequest:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	report := make([]models.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		report = append(report, translate(fe))
	}

	return NewValidationError(report...)
}

func translate(fe validator.FieldError) models.FieldError {
	switch fe.Tag() {
	case "required":
		return MissingField(fe.Field())
	case TagROT13Text:
		text, _ := fe.Value().(string)
		return TextFieldError(fe.Field(), cipher.CheckText(text))
	default:
		return models.FieldError{Loc: []string{locBody, fe.Field()}, Msg: msgInvalidValue, Type: typeValueError}
	}
}

func isROT13Text(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String && cipher.ValidText(fl.Field().String())
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return f.Name
}
