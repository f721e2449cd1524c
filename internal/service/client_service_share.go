// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-notes/internal/adapter"
	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/share"
	"github.com/MKhiriev/go-qr-notes/models"
)

// qrImageSize is the pixel edge of the generated PNG code.
const qrImageSize = 256

type clientShareService struct {
	identity adapter.Identity
	notes    adapter.NoteRepository
	logger   *logger.Logger
}

func NewClientShareService(identity adapter.Identity, notes adapter.NoteRepository, logger *logger.Logger) ClientShareService {
	return &clientShareService{identity: identity, notes: notes, logger: logger}
}

// Share rolls the note's token and persists it before any code is rendered.
// The order matters: if the new token never reaches the backend, a code
// built from it would fail every future lookup, so persistence failure
// aborts the whole action.
func (s *clientShareService) Share(ctx context.Context, note models.Note) (models.ShareCode, error) {
	token := share.GenerateToken()

	updated, err := s.notes.UpdateFields(ctx, note.ID, models.NoteUpdate{Token: &token})
	if errors.Is(err, adapter.ErrNotFound) {
		return models.ShareCode{}, fmt.Errorf("%w: %s", ErrNoteNotFound, note.ID)
	}
	if err != nil {
		s.logger.Err(err).Str("note_id", note.ID).Msg("share token persistence failed")
		return models.ShareCode{}, fmt.Errorf("share token persistence failed: %w", err)
	}

	payload := share.EncodePayload(updated.ID, updated.Token)

	qr, err := share.QRCodeTerminal(payload)
	if err != nil {
		s.logger.Err(err).Str("note_id", note.ID).Msg("share code rendering failed")
		return models.ShareCode{}, fmt.Errorf("share code rendering failed: %w", err)
	}
	png, err := share.QRCodePNG(payload, qrImageSize)
	if err != nil {
		s.logger.Err(err).Str("note_id", note.ID).Msg("share code rendering failed")
		return models.ShareCode{}, fmt.Errorf("share code rendering failed: %w", err)
	}

	return models.ShareCode{
		NoteID:  updated.ID,
		Token:   updated.Token,
		Payload: payload,
		QR:      qr,
		PNG:     png,
	}, nil
}

func (s *clientShareService) Decode(scanned string) (string, string, error) {
	return share.DecodePayload(scanned)
}

// Lookup fetches the note behind a decoded payload and compares tokens. The
// comparison is exact: a code issued before the last share or edit carries a
// stale token and is rejected.
func (s *clientShareService) Lookup(ctx context.Context, noteID, token string) (models.Note, error) {
	note, err := s.notes.Get(ctx, noteID)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
	}
	if err != nil {
		s.logger.Err(err).Str("note_id", noteID).Msg("shared note lookup failed")
		return models.Note{}, fmt.Errorf("shared note lookup failed: %w", err)
	}

	if note.Token != token {
		s.logger.Warn().Str("note_id", noteID).Msg("scanned token does not match current one")
		return models.Note{}, ErrTokenMismatch
	}

	return note, nil
}

func (s *clientShareService) LookupScanned(ctx context.Context, scanner CodeScanner) (models.Note, error) {
	scanned, err := scanner.Scan(ctx)
	if err != nil {
		return models.Note{}, fmt.Errorf("scan failed: %w", err)
	}

	noteID, token, err := s.Decode(scanned)
	if err != nil {
		return models.Note{}, err
	}

	return s.Lookup(ctx, noteID, token)
}

// Import appends the current user to the note's member list, preserving the
// existing order and dropping duplicates. The token is not touched, so the
// same code keeps working for further receivers until the owner re-shares
// or edits. Importing a note the user is already a member of persists the
// unchanged list.
func (s *clientShareService) Import(ctx context.Context, note models.Note) (models.Note, error) {
	userID := s.identity.CurrentUserID()
	if userID == "" {
		return models.Note{}, errors.New("no authenticated user")
	}

	members := unionMember(note.UserIDs, userID)

	updated, err := s.notes.UpdateFields(ctx, note.ID, models.NoteUpdate{UserIDs: &members})
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, note.ID)
	}
	if err != nil {
		s.logger.Err(err).Str("note_id", note.ID).Msg("note import failed")
		return models.Note{}, fmt.Errorf("note import failed: %w", err)
	}

	return updated, nil
}

// unionMember returns members with userID appended once, keeping the
// original order and removing duplicates already present.
func unionMember(members []string, userID string) []string {
	result := make([]string, 0, len(members)+1)
	seen := make(map[string]struct{}, len(members)+1)

	for _, id := range append(append([]string{}, members...), userID) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
