package store

import (
	"context"

	"github.com/MKhiriev/go-qr-notes/models"
)

// UserRepository is the data-access contract for the "users" collection.
type UserRepository interface {
	// CreateUser persists a new user record keyed by the id already set on
	// the user (assigned by the identity layer at registration).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by email for authentication.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetUser fetches a user record by id.
	GetUser(ctx context.Context, id string) (models.User, error)
}

// NoteRepository is the data-access contract for the "notes" collection.
type NoteRepository interface {
	// CreateNote persists a new note, assigning its id and timestamps.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNote fetches a note by id.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// GetNotesByUserID returns every note whose member list contains the
	// given user id.
	GetNotesByUserID(ctx context.Context, userID string) ([]models.Note, error)

	// UpdateNoteFields applies a partial update and stamps updated_at,
	// returning the note as persisted.
	UpdateNoteFields(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a note by id.
	DeleteNote(ctx context.Context, id string) error
}
