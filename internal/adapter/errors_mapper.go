// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rot13-api/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp)
	if resp.StatusCode() == http.StatusTooManyRequests {
		if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
			msg = fmt.Sprintf("%s (retry after %ss)", msg, retryAfter)
		}
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
}

// errorMessage extracts a readable message from the server's error bodies:
// {"detail":"..."}, {"detail":[{...}]} or {"error":"..."}.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}

	var detail models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	var validation models.ValidationErrorResponse
	if err := json.Unmarshal(resp.Body(), &validation); err == nil && len(validation.Detail) > 0 {
		msgs := make([]string, 0, len(validation.Detail))
		for _, fe := range validation.Detail {
			msgs = append(msgs, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
		}
		return strings.Join(msgs, "; ")
	}

	var limited models.RateLimitResponse
	if err := json.Unmarshal(resp.Body(), &limited); err == nil && limited.Error != "" {
		return limited.Error
	}

	return body
}
