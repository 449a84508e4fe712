// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import (
	"errors"
	"strings"
)

// Text check failures returned by CheckText.
var (
	ErrEmptyText        = errors.New("text is empty")
	ErrInvalidCharacter = errors.New("text contains characters other than A-Z and space")
)

const (
	alphabetSize = 26

	// ROT13Offset is half the alphabet, which makes the rotation self-inverse.
	ROT13Offset = alphabetSize / 2
)

// Rotate shifts every letter of text forward by offset positions within
// A-Z, wrapping around at Z. Spaces are kept as is.
//
// Negative offsets rotate backwards.
func Rotate(text string, offset int) string {
	shift := ((offset % alphabetSize) + alphabetSize) % alphabetSize

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' {
			b.WriteByte(' ')
			continue
		}
		pos := int(c - 'A')
		b.WriteByte(byte('A' + (pos+shift)%alphabetSize))
	}

	return b.String()
}

// ROT13 rotates text by 13. Applying it twice yields the original text.
func ROT13(text string) string {
	return Rotate(text, ROT13Offset)
}

// ValidText reports whether text is non-empty and contains only
// uppercase A-Z letters and spaces.
func ValidText(text string) bool {
	return CheckText(text) == nil
}

// CheckText is ValidText with the reason: ErrEmptyText or ErrInvalidCharacter.
func CheckText(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	for i := 0; i < len(text); i++ {
		if !isAllowed(text[i]) {
			return ErrInvalidCharacter
		}
	}
	return nil
}

func isAllowed(c byte) bool {
	return c == ' ' || ('A' <= c && c <= 'Z')
}
