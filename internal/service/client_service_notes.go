package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-notes/internal/adapter"
	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/share"
	"github.com/MKhiriev/go-qr-notes/models"
)

type clientNoteService struct {
	notes  adapter.NoteRepository
	logger *logger.Logger
}

func NewClientNoteService(notes adapter.NoteRepository, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{notes: notes, logger: logger}
}

func (s *clientNoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		s.logger.Err(err).Msg("notes listing failed")
		return nil, fmt.Errorf("notes listing failed: %w", err)
	}

	return notes, nil
}

// Search filters by case-insensitive substring over title and content,
// preserving the input order.
func (s *clientNoteService) Search(notes []models.Note, query string) []models.Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return notes
	}

	matched := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Content), query) {
			matched = append(matched, note)
		}
	}

	return matched
}

func (s *clientNoteService) Get(ctx context.Context, id string) (models.Note, error) {
	note, err := s.notes.Get(ctx, id)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	if err != nil {
		s.logger.Err(err).Str("note_id", id).Msg("note fetch failed")
		return models.Note{}, fmt.Errorf("note fetch failed: %w", err)
	}

	return note, nil
}

// Create persists a new note. Every note carries a share token from the
// moment it exists, so one is generated here.
func (s *clientNoteService) Create(ctx context.Context, title, content, securityPassword string) (models.Note, error) {
	note := models.Note{
		Title:            title,
		Content:          content,
		SecurityPassword: securityPassword,
		Token:            share.GenerateToken(),
	}

	created, err := s.notes.Create(ctx, note)
	if err != nil {
		s.logger.Err(err).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

// Update saves the edited fields and rolls the token. Rolling on every edit
// means a previously issued share code stops working once the note changes.
func (s *clientNoteService) Update(ctx context.Context, id, title, content, securityPassword string) (models.Note, error) {
	token := share.GenerateToken()
	update := models.NoteUpdate{
		Title:            &title,
		Content:          &content,
		SecurityPassword: &securityPassword,
		Token:            &token,
	}

	updated, err := s.notes.UpdateFields(ctx, id, update)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	if err != nil {
		s.logger.Err(err).Str("note_id", id).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

func (s *clientNoteService) Delete(ctx context.Context, id string) error {
	err := s.notes.Delete(ctx, id)
	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	if err != nil {
		s.logger.Err(err).Str("note_id", id).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}
