// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport layer for communicating
// with the notes server.
//
// The abstractions here decouple the client's business logic from the
// backend: [Identity] covers the account/session lifecycle, [NoteRepository]
// the notes collection, and [UserRepository] the profile record. The package
// ships an HTTP/REST implementation ([NewHTTPBackend]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qr-notes/models"
)

// Identity is the account and session lifecycle of the backend.
type Identity interface {
	// SignUp creates a new account. It does not establish a session: the
	// user proceeds to SignIn afterwards.
	SignUp(ctx context.Context, user models.User) (models.User, error)

	// SignIn authenticates and stores the session token for subsequent
	// authenticated requests.
	SignIn(ctx context.Context, email, password string) error

	// SignOut drops the stored session token.
	SignOut()

	// CurrentUserID returns the authenticated user's id, or an empty string
	// when no session is active.
	CurrentUserID() string
}

// NoteRepository is the injected data-access contract for notes. The client's
// flows depend on this interface only, never on the transport behind it.
type NoteRepository interface {
	// Create persists a new note and returns it with the backend-assigned id
	// and timestamps.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// Get fetches a note by id. Returns ErrNotFound (wrapped) when the id
	// matches nothing.
	Get(ctx context.Context, id string) (models.Note, error)

	// List returns all notes the current user is a member of.
	List(ctx context.Context) ([]models.Note, error)

	// UpdateFields applies a partial update and returns the note as
	// persisted.
	UpdateFields(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)

	// Delete removes a note by id.
	Delete(ctx context.Context, id string) error
}

// UserRepository is the injected data-access contract for the current user's
// profile record.
type UserRepository interface {
	// Me fetches the authenticated user's profile, including the plaintext
	// security password used by the account gate.
	Me(ctx context.Context) (models.User, error)
}
