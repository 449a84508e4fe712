// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TextRequest is the JSON body accepted by POST /api/rot13.
//
// Text is a pointer so that a missing field can be told apart from an empty
// one. It must be present, non-empty and consist only of A-Z and spaces.
type TextRequest struct {
	Text *string `json:"text" validate:"required,rot13text"`
}

// GetText returns the text or "" when it is absent.
func (r TextRequest) GetText() string {
	if r.Text == nil {
		return ""
	}
	return *r.Text
}

// LoginRequest holds the form-encoded credentials accepted by POST /login.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
