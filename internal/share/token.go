// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package share implements the note-sharing core: generation of share
// tokens, the QR payload wire format, and rendering of payloads as QR codes.
//
// A share code proves that the presenter currently holds a valid share link
// for a note. The note's token is re-rolled on every share action and on
// every edit, so older codes stop working as soon as a new one is issued.
package share

import (
	"math/rand/v2"
)

// tokenAlphabet is the 62-character set share tokens are drawn from.
const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TokenLength is the exact length of every generated share token.
const TokenLength = 16

// GenerateToken produces a 16-character random string drawn uniformly from
// [a-zA-Z0-9]. Tokens carry no uniqueness guarantee and are not persisted
// here; the caller stores the token on the note it shares.
func GenerateToken() string {
	buf := make([]byte, TokenLength)
	for i := range buf {
		buf[i] = tokenAlphabet[rand.IntN(len(tokenAlphabet))]
	}
	return string(buf)
}
