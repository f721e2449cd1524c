package store

import "github.com/MKhiriev/go-qr-notes/internal/logger"

// Repositories bundles all data-access implementations handed to the
// service layer.
type Repositories struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewRepositories constructs PostgreSQL-backed repositories sharing the
// given connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
	}
}
