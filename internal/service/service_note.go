package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/store"
	"github.com/MKhiriev/go-qr-notes/internal/validators"
	"github.com/MKhiriev/go-qr-notes/models"
)

// noteService is the concrete implementation of NoteService.
//
// It enforces ownership only at creation time. Reads by id and partial
// updates are open to any authenticated user because the import flow fetches
// a note and appends the caller to its member list before the caller is a
// member.
type noteService struct {
	noteRepository store.NoteRepository
	validate       validators.Validator
	logger         *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validate:       validators.NewNoteValidator(),
		logger:         logger,
	}
}

// CreateNote persists a new note owned by userID.
//
// The member list is forced to exactly the creator regardless of what the
// caller sent. The share token must already be set; every note carries one
// from the moment it exists.
//
// Returns ErrInvalidDataProvided when userID or the token is empty.
func (s *noteService) CreateNote(ctx context.Context, userID string, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("empty user id provided")
		return models.Note{}, ErrInvalidDataProvided
	}
	if err := s.validate.Validate(ctx, note, validators.FieldToken); err != nil {
		log.Err(err).Str("user_id", userID).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note.UserIDs = []string{userID}

	createdNote, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// ListNotes returns every note whose member list contains userID.
func (s *noteService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("empty user id provided")
		return nil, ErrInvalidDataProvided
	}

	notes, err := s.noteRepository.GetNotesByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("notes listing ended with error")
		return nil, fmt.Errorf("notes listing ended with error: %w", err)
	}

	return notes, nil
}

// GetNote fetches a note by id. store.ErrNoteNotFound passes through wrapped
// so handlers can map it to 404.
func (s *noteService) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		log.Error().Msg("empty note id provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := s.noteRepository.GetNote(ctx, id)
	if err != nil {
		log.Err(err).Str("note_id", id).Msg("note lookup ended with error")
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	return note, nil
}

// UpdateNoteFields applies a partial update to a note and returns the note
// as persisted, with the server-stamped updatedAt.
func (s *noteService) UpdateNoteFields(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		log.Error().Msg("empty note id provided")
		return models.Note{}, ErrInvalidDataProvided
	}
	if err := s.validate.Validate(ctx, update); err != nil {
		log.Err(err).Str("note_id", id).Msg("invalid note update provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedNote, err := s.noteRepository.UpdateNoteFields(ctx, id, update)
	if err != nil {
		log.Err(err).Str("note_id", id).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updatedNote, nil
}

// DeleteNote removes a note by id.
func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		log.Error().Msg("empty note id provided")
		return ErrInvalidDataProvided
	}

	if err := s.noteRepository.DeleteNote(ctx, id); err != nil {
		log.Err(err).Str("note_id", id).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
