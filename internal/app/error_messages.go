// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONProvided is returned when the request body is not valid
	// JSON for the expected document shape.
	MsgInvalidJSONProvided = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded request fails basic
	// validation (e.g. missing required fields or an empty update).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgEmailAlreadyRegistered is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyRegistered = "email already registered"

	// MsgNoUserWasFound is returned when a profile fetch targets a user id
	// that no longer exists.
	MsgNoUserWasFound = "no user was found"

	// MsgNoteNotFound is returned when a read, update, or delete operation
	// targets a note that does not exist.
	MsgNoteNotFound = "note not found"
)
