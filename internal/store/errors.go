package store

import "errors"

var (
	// ErrEmailAlreadyRegistered is returned by CreateUser when the email is
	// already taken by another account.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a user lookup matches no record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a note lookup or update matches no
	// record.
	ErrNoteNotFound = errors.New("note not found")

	// ErrEmptyNoteUpdate is returned when an update request carries no
	// fields to change.
	ErrEmptyNoteUpdate = errors.New("empty note update")
)
