// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import (
	"errors"
	"strings"
)

// Separator is the exact delimiter between the note id and the token inside
// a QR payload: two literal space characters. Existing scanners split on
// this sequence, so it must never change.
const Separator = "  "

// ErrInvalidCodeFormat is returned when a scanned payload does not consist
// of exactly two non-empty fields separated by [Separator]. Callers surface
// it with the same generic "invalid code" message as a token mismatch.
var ErrInvalidCodeFormat = errors.New("invalid share code format")

// EncodePayload renders the QR payload for a note: the note id, two spaces,
// and the current share token.
func EncodePayload(noteID, token string) string {
	return noteID + Separator + token
}

// DecodePayload splits a scanned payload into its note id and token.
//
// The payload must yield exactly two non-empty fields when split on the
// two-space separator; anything else is rejected with ErrInvalidCodeFormat
// before any backend call is made.
func DecodePayload(payload string) (noteID, token string, err error) {
	parts := strings.Split(payload, Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidCodeFormat
	}
	return parts[0], parts[1], nil
}
