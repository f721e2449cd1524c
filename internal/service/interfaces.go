package service

import (
	"context"

	"github.com/MKhiriev/go-qr-notes/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle on the server.
type AuthService interface {
	// RegisterUser creates a new account. The profile keeps a redundant copy
	// of the password alongside the credential store.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates by email and password and returns the stored user
	// record.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Profile fetches the account record for an authenticated user id.
	Profile(ctx context.Context, userID string) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService handles the notes collection on the server.
type NoteService interface {
	// CreateNote persists a new note owned by userID. The member list is
	// forced to contain exactly the creator.
	CreateNote(ctx context.Context, userID string, note models.Note) (models.Note, error)

	// ListNotes returns every note the user is a member of.
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)

	// GetNote fetches a note by id. Any authenticated user may read a note
	// by id; the import flow depends on fetching notes the caller is not yet
	// a member of.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// UpdateNoteFields applies a partial update to a note.
	UpdateNoteFields(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a note by id.
	DeleteNote(ctx context.Context, id string) error
}
