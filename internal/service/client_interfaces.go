package service

import (
	"context"

	"github.com/MKhiriev/go-qr-notes/models"
)

// ClientAuthService defines the client-side contract for the account
// lifecycle and the plaintext security-password gates.
type ClientAuthService interface {
	// Register creates a new account on the server. No session is
	// established; the user is routed back to the sign-in screen.
	Register(ctx context.Context, user models.User) error

	// Login authenticates against the server and stores the session token in
	// the backend adapter.
	Login(ctx context.Context, email, password string) error

	// Logout drops the session.
	Logout()

	// CurrentUserID returns the authenticated user's id, empty when signed
	// out.
	CurrentUserID() string

	// Profile fetches the signed-in user's record, including the security
	// password the account gate compares against.
	Profile(ctx context.Context) (models.User, error)

	// CheckSecurityPassword applies the gate rule shared by the account gate
	// and the per-note gate: an empty entry is rejected locally with
	// ErrEmptySecurityPassword, a non-matching one with
	// ErrSecurityPasswordMismatch. The comparison is an exact plaintext
	// match.
	CheckSecurityPassword(stored, entered string) error
}

// ClientNoteService defines the client-side contract for working with the
// user's notes through the injected NoteRepository.
type ClientNoteService interface {
	// List fetches every note the user is a member of.
	List(ctx context.Context) ([]models.Note, error)

	// Search filters notes by a case-insensitive substring match over title
	// and content. An empty query returns the input unchanged.
	Search(notes []models.Note, query string) []models.Note

	// Get fetches a single note by id. Returns ErrNoteNotFound (wrapped)
	// when the note no longer exists.
	Get(ctx context.Context, id string) (models.Note, error)

	// Create persists a new note with a freshly generated share token.
	Create(ctx context.Context, title, content, securityPassword string) (models.Note, error)

	// Update saves edited fields and rolls the share token, invalidating any
	// previously issued share code for the note.
	Update(ctx context.Context, id, title, content, securityPassword string) (models.Note, error)

	// Delete removes the note.
	Delete(ctx context.Context, id string) error
}

// CodeScanner supplies one decoded text per scan. The terminal client
// implements it by reading a pasted line; a device with a camera would
// implement it over a frame decoder.
type CodeScanner interface {
	Scan(ctx context.Context) (string, error)
}

// ClientShareService defines the client-side contract for the QR share and
// import flows.
type ClientShareService interface {
	// Share rolls the note's token, persists it, and returns the share code.
	// If persistence fails no code is returned: a code whose token was never
	// stored would be unusable by the receiver.
	Share(ctx context.Context, note models.Note) (models.ShareCode, error)

	// Decode strictly parses a scanned payload into note id and token.
	Decode(scanned string) (noteID, token string, err error)

	// Lookup fetches the note behind a decoded payload and verifies the
	// token. Returns ErrNoteNotFound when the id matches nothing and
	// ErrTokenMismatch when the scanned token is stale or wrong.
	Lookup(ctx context.Context, noteID, token string) (models.Note, error)

	// LookupScanned obtains one payload from the scanner, decodes it, and
	// performs Lookup.
	LookupScanned(ctx context.Context, scanner CodeScanner) (models.Note, error)

	// Import adds the current user to the note's member list. The token is
	// left untouched and the operation is idempotent for existing members.
	Import(ctx context.Context, note models.Note) (models.Note, error)
}
