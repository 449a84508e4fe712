// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtTestNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("testuser", "HS256", 30*time.Minute, "secret-key", jwtTestNow)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Claims.Username != "testuser" {
		t.Errorf("expected username 'testuser', got %s", token.Claims.Username)
	}
	if !token.Claims.ExpiresAt.Time.Equal(jwtTestNow.Add(30 * time.Minute)) {
		t.Errorf("unexpected exp %v", token.Claims.ExpiresAt.Time)
	}
	if token.Claims.IssuedAt != nil || token.Claims.Subject != "" || token.Claims.Issuer != "" {
		t.Error("expected only username and exp claims")
	}
}

func TestGenerateJWTToken_Algorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			token, err := GenerateJWTToken("admin", alg, time.Minute, "key", jwtTestNow)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if token.Token.Method.Alg() != alg {
				t.Errorf("expected alg %s, got %s", alg, token.Token.Method.Alg())
			}
		})
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		algorithm string
		duration  time.Duration
		key       string
	}{
		{"empty username", "", "HS256", time.Hour, "key"},
		{"zero duration", "testuser", "HS256", 0, "key"},
		{"negative duration", "testuser", "HS256", -time.Second, "key"},
		{"empty key", "testuser", "HS256", time.Hour, ""},
		{"unknown algorithm", "testuser", "XS999", time.Hour, "key"},
		{"asymmetric algorithm", "testuser", "RS256", time.Hour, "key"},
		{"none algorithm", "testuser", "none", time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.username, tt.algorithm, tt.duration, tt.key, jwtTestNow)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("testuser", "HS256", 5*time.Minute, "secret-key", jwtTestNow)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "HS256", fixedNow(jwtTestNow.Add(time.Minute)))

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.Claims.Username != "testuser" {
		t.Errorf("expected username 'testuser', got %s", parsed.Claims.Username)
	}
	if parsed.SignedString != genToken.SignedString {
		t.Error("expected signed string to be preserved")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("testuser", "HS256", time.Hour, "correct-key", jwtTestNow)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "HS256", fixedNow(jwtTestNow))
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("testuser", "HS256", 30*time.Minute, "key", jwtTestNow)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "HS256", fixedNow(jwtTestNow.Add(31*time.Minute)))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_AlgorithmMismatch(t *testing.T) {
	genToken, _ := GenerateJWTToken("testuser", "HS512", time.Hour, "key", jwtTestNow)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "HS256", fixedNow(jwtTestNow))
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature method error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExp(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "testuser"})
	signed, _ := token.SignedString([]byte("key"))

	_, err := ValidateAndParseJWTToken(signed, "key", "HS256", fixedNow(jwtTestNow))
	if !errors.Is(err, jwt.ErrTokenRequiredClaimMissing) {
		t.Errorf("expected required claim error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingUsername(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": jwtTestNow.Add(time.Hour).Unix()})
	signed, _ := token.SignedString([]byte("key"))

	_, err := ValidateAndParseJWTToken(signed, "key", "HS256", fixedNow(jwtTestNow))
	if !errors.Is(err, ErrEmptyUsernameClaim) {
		t.Errorf("expected ErrEmptyUsernameClaim, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "HS256", fixedNow(jwtTestNow))
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "canonical", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower case scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme and space", header: "Bearer ", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrNoBearerToken) {
					t.Errorf("expected ErrNoBearerToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want || strings.Contains(got, " ") {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
