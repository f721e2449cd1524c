// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-notes/internal/adapter"
	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/share"
	"github.com/MKhiriev/go-qr-notes/models"
)

// ─────────────────────────────────────────────
// Mocks: adapter.Identity / adapter.NoteRepository
// ─────────────────────────────────────────────

type mockIdentity struct {
	signUpFn      func(ctx context.Context, user models.User) (models.User, error)
	signInFn      func(ctx context.Context, email, password string) error
	signedOut     bool
	currentUserID string
}

func (m *mockIdentity) SignUp(ctx context.Context, user models.User) (models.User, error) {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, user)
	}
	return user, nil
}

func (m *mockIdentity) SignIn(ctx context.Context, email, password string) error {
	if m.signInFn != nil {
		return m.signInFn(ctx, email, password)
	}
	return nil
}

func (m *mockIdentity) SignOut() {
	m.signedOut = true
	m.currentUserID = ""
}

func (m *mockIdentity) CurrentUserID() string {
	return m.currentUserID
}

type mockNoteBackend struct {
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	getFn    func(ctx context.Context, id string) (models.Note, error)
	listFn   func(ctx context.Context) ([]models.Note, error)
	updateFn func(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockNoteBackend) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteBackend) Get(ctx context.Context, id string) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Note{}, nil
}

func (m *mockNoteBackend) List(ctx context.Context) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockNoteBackend) UpdateFields(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Note{}, nil
}

func (m *mockNoteBackend) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// scanOnce returns a fixed payload, standing in for one camera scan.
type scanOnce struct {
	payload string
	err     error
}

func (s scanOnce) Scan(context.Context) (string, error) {
	return s.payload, s.err
}

func newTestShareService(identity *mockIdentity, notes *mockNoteBackend) ClientShareService {
	return NewClientShareService(identity, notes, logger.Nop())
}

// ─────────────────────────────────────────────
// Share
// ─────────────────────────────────────────────

func TestShareService_Share_RollsAndPersistsToken(t *testing.T) {
	stored := models.Note{ID: "note-1", Title: "Groceries", Token: "OldOldOldOldOld1"}

	notes := &mockNoteBackend{
		updateFn: func(_ context.Context, id string, update models.NoteUpdate) (models.Note, error) {
			assert.Equal(t, "note-1", id)
			require.NotNil(t, update.Token)
			assert.Len(t, *update.Token, share.TokenLength)
			assert.NotEqual(t, stored.Token, *update.Token, "share must roll the token")
			assert.Nil(t, update.UserIDs)
			assert.Nil(t, update.Title)

			stored.Token = *update.Token
			return stored, nil
		},
	}
	svc := newTestShareService(&mockIdentity{}, notes)

	code, err := svc.Share(context.Background(), models.Note{ID: "note-1", Token: "OldOldOldOldOld1"})

	require.NoError(t, err)
	assert.Equal(t, "note-1", code.NoteID)
	assert.Equal(t, stored.Token, code.Token)
	assert.Equal(t, "note-1"+share.Separator+stored.Token, code.Payload)
	assert.NotEmpty(t, code.QR)
	assert.NotEmpty(t, code.PNG)
}

func TestShareService_Share_FailClosed(t *testing.T) {
	notes := &mockNoteBackend{
		updateFn: func(_ context.Context, _ string, _ models.NoteUpdate) (models.Note, error) {
			return models.Note{}, errors.New("network down")
		},
	}
	svc := newTestShareService(&mockIdentity{}, notes)

	code, err := svc.Share(context.Background(), models.Note{ID: "note-1"})

	require.Error(t, err)
	assert.Zero(t, code, "no share code may be produced when persistence fails")
}

func TestShareService_Share_NoteGone(t *testing.T) {
	notes := &mockNoteBackend{
		updateFn: func(_ context.Context, _ string, _ models.NoteUpdate) (models.Note, error) {
			return models.Note{}, adapter.ErrNotFound
		},
	}
	svc := newTestShareService(&mockIdentity{}, notes)

	_, err := svc.Share(context.Background(), models.Note{ID: "deleted"})

	require.ErrorIs(t, err, ErrNoteNotFound)
}

// ─────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────

func TestShareService_Lookup_Success(t *testing.T) {
	notes := &mockNoteBackend{
		getFn: func(_ context.Context, id string) (models.Note, error) {
			return models.Note{ID: id, Title: "Groceries", Token: "Aa0Bb1Cc2Dd3Ee4F"}, nil
		},
	}
	svc := newTestShareService(&mockIdentity{}, notes)

	note, err := svc.Lookup(context.Background(), "note-1", "Aa0Bb1Cc2Dd3Ee4F")

	require.NoError(t, err)
	assert.Equal(t, "Groceries", note.Title, "title is shown in the import confirmation")
}

func TestShareService_Lookup_TokenMismatch(t *testing.T) {
	notes := &mockNoteBackend{
		getFn: func(_ context.Context, id string) (models.Note, error) {
			return models.Note{ID: id, Token: "CurrentToken0001"}, nil
		},
	}
	svc := newTestShareService(&mockIdentity{}, notes)

	_, err := svc.Lookup(context.Background(), "note-1", "StaleStaleStale1")

	require.ErrorIs(t, err, ErrTokenMismatch)
}

func TestShareService_Lookup_NoteNotFound(t *testing.T) {
	notes := &mockNoteBackend{
		getFn: func(_ context.Context, _ string) (models.Note, error) {
			return models.Note{}, adapter.ErrNotFound
		},
	}
	svc := newTestShareService(&mockIdentity{}, notes)

	_, err := svc.Lookup(context.Background(), "gone", "Aa0Bb1Cc2Dd3Ee4F")

	require.ErrorIs(t, err, ErrNoteNotFound)
}

// TestShareService_StaleCodeRejectedAfterReShare walks the full cycle: a code
// issued by one share stops working the moment the owner shares again.
func TestShareService_StaleCodeRejectedAfterReShare(t *testing.T) {
	stored := models.Note{ID: "note-1", Token: "InitialToken0001"}

	notes := &mockNoteBackend{
		updateFn: func(_ context.Context, _ string, update models.NoteUpdate) (models.Note, error) {
			stored.Token = *update.Token
			return stored, nil
		},
		getFn: func(_ context.Context, _ string) (models.Note, error) {
			return stored, nil
		},
	}
	svc := newTestShareService(&mockIdentity{}, notes)

	firstCode, err := svc.Share(context.Background(), stored)
	require.NoError(t, err)

	// the first code round-trips while it is current
	id, token, err := svc.Decode(firstCode.Payload)
	require.NoError(t, err)
	_, err = svc.Lookup(context.Background(), id, token)
	require.NoError(t, err)

	// second share rolls the token; the first code is now stale
	_, err = svc.Share(context.Background(), stored)
	require.NoError(t, err)

	_, err = svc.Lookup(context.Background(), id, token)
	require.ErrorIs(t, err, ErrTokenMismatch)
}

// ─────────────────────────────────────────────
// Decode / LookupScanned
// ─────────────────────────────────────────────

func TestShareService_Decode_Malformed(t *testing.T) {
	svc := newTestShareService(&mockIdentity{}, &mockNoteBackend{})

	_, _, err := svc.Decode("just-some-text")

	require.ErrorIs(t, err, share.ErrInvalidCodeFormat)
}

func TestShareService_LookupScanned_Success(t *testing.T) {
	notes := &mockNoteBackend{
		getFn: func(_ context.Context, id string) (models.Note, error) {
			assert.Equal(t, "note-1", id)
			return models.Note{ID: id, Token: "Aa0Bb1Cc2Dd3Ee4F"}, nil
		},
	}
	svc := newTestShareService(&mockIdentity{}, notes)

	note, err := svc.LookupScanned(context.Background(), scanOnce{
		payload: share.EncodePayload("note-1", "Aa0Bb1Cc2Dd3Ee4F"),
	})

	require.NoError(t, err)
	assert.Equal(t, "note-1", note.ID)
}

func TestShareService_LookupScanned_ScannerError(t *testing.T) {
	svc := newTestShareService(&mockIdentity{}, &mockNoteBackend{})

	_, err := svc.LookupScanned(context.Background(), scanOnce{err: errors.New("scan aborted")})

	require.Error(t, err)
}

// ─────────────────────────────────────────────
// Import
// ─────────────────────────────────────────────

func TestShareService_Import_AppendsCurrentUser(t *testing.T) {
	notes := &mockNoteBackend{
		updateFn: func(_ context.Context, id string, update models.NoteUpdate) (models.Note, error) {
			assert.Equal(t, "note-1", id)
			require.NotNil(t, update.UserIDs)
			assert.Equal(t, []string{"owner", "user-2"}, *update.UserIDs, "existing order preserved, importer appended")
			assert.Nil(t, update.Token, "import must not touch the token")
			return models.Note{ID: id, UserIDs: *update.UserIDs}, nil
		},
	}
	svc := newTestShareService(&mockIdentity{currentUserID: "user-2"}, notes)

	imported, err := svc.Import(context.Background(), models.Note{ID: "note-1", UserIDs: []string{"owner"}})

	require.NoError(t, err)
	assert.True(t, imported.HasMember("user-2"))
}

func TestShareService_Import_IdempotentForExistingMember(t *testing.T) {
	notes := &mockNoteBackend{
		updateFn: func(_ context.Context, id string, update models.NoteUpdate) (models.Note, error) {
			require.NotNil(t, update.UserIDs)
			assert.Equal(t, []string{"owner", "user-2"}, *update.UserIDs, "re-import must not duplicate the member")
			return models.Note{ID: id, UserIDs: *update.UserIDs}, nil
		},
	}
	svc := newTestShareService(&mockIdentity{currentUserID: "user-2"}, notes)

	imported, err := svc.Import(context.Background(), models.Note{ID: "note-1", UserIDs: []string{"owner", "user-2"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"owner", "user-2"}, imported.UserIDs)
}

func TestShareService_Import_NoSession(t *testing.T) {
	svc := newTestShareService(&mockIdentity{}, &mockNoteBackend{})

	_, err := svc.Import(context.Background(), models.Note{ID: "note-1", UserIDs: []string{"owner"}})

	require.Error(t, err)
}

func TestUnionMember(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, unionMember([]string{"a", "b"}, "c"))
	assert.Equal(t, []string{"a", "b"}, unionMember([]string{"a", "b"}, "a"))
	assert.Equal(t, []string{"a"}, unionMember(nil, "a"))
	assert.Equal(t, []string{"a", "b"}, unionMember([]string{"a", "a", "b"}, "b"))
}
