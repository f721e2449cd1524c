package service

import "errors"

// Sentinel errors surfaced to the terminal UI by the client services.
var (
	// ErrNoteNotFound is returned by lookups when the note id matches
	// nothing, either from a stale share code or a deleted note.
	ErrNoteNotFound = errors.New("note not found")

	// ErrTokenMismatch is returned when a scanned share code carries a token
	// that does not exactly match the note's current one. Any re-share or
	// edit of the note invalidates previously issued codes.
	ErrTokenMismatch = errors.New("share token mismatch")

	// ErrEmptySecurityPassword is returned by the gates when the submitted
	// value is blank. The check is local; no request is made.
	ErrEmptySecurityPassword = errors.New("empty security password")

	// ErrSecurityPasswordMismatch is returned when the submitted gate value
	// does not exactly match the stored plaintext one.
	ErrSecurityPasswordMismatch = errors.New("security password mismatch")

	// ErrRegisterOnServer and ErrLoginOnServer wrap backend failures of the
	// corresponding identity calls.
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
