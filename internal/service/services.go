package service

import (
	"github.com/MKhiriev/go-qr-notes/internal/config"
	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/store"
)

// Services bundles the server-side business logic handed to the HTTP layer.
type Services struct {
	AuthService AuthService
	NoteService NoteService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, cfg.App, logger),
		NoteService: NewNoteService(repos.NoteRepository, logger),
	}
}
