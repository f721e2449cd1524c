package service

import (
	"github.com/MKhiriev/go-qr-notes/internal/adapter"
	"github.com/MKhiriev/go-qr-notes/internal/logger"
)

// ClientServices bundles the client-side business logic handed to the
// terminal UI.
type ClientServices struct {
	AuthService  ClientAuthService
	NoteService  ClientNoteService
	ShareService ClientShareService
}

func NewClientServices(backend *adapter.HTTPBackend, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewClientAuthService(backend, backend, logger),
		NoteService:  NewClientNoteService(backend, logger),
		ShareService: NewClientShareService(backend, backend, logger),
	}
}
