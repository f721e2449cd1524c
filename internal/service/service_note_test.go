package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/store"
	"github.com/MKhiriev/go-qr-notes/models"
)

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn  func(ctx context.Context, note models.Note) (models.Note, error)
	getFn     func(ctx context.Context, id string) (models.Note, error)
	getByUser func(ctx context.Context, userID string) ([]models.Note, error)
	updateFn  func(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) GetNotesByUserID(ctx context.Context, userID string) ([]models.Note, error) {
	if m.getByUser != nil {
		return m.getByUser(ctx, userID)
	}
	return nil, nil
}

func (m *mockNoteRepository) UpdateNoteFields(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newTestNoteService(repo *mockNoteRepository) NoteService {
	return NewNoteService(repo, logger.Nop())
}

// ─────────────────────────────────────────────
// CreateNote
// ─────────────────────────────────────────────

func TestNoteService_CreateNote_ForcesCreatorMembership(t *testing.T) {
	repo := &mockNoteRepository{
		createFn: func(_ context.Context, note models.Note) (models.Note, error) {
			assert.Equal(t, []string{"user-1"}, note.UserIDs, "member list must be exactly the creator")
			note.ID = "note-1"
			return note, nil
		},
	}
	svc := newTestNoteService(repo)

	created, err := svc.CreateNote(context.Background(), "user-1", models.Note{
		Title:   "Groceries",
		Token:   "Aa0Bb1Cc2Dd3Ee4F",
		UserIDs: []string{"someone-else", "user-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "note-1", created.ID)
}

func TestNoteService_CreateNote_RequiresToken(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{})

	_, err := svc.CreateNote(context.Background(), "user-1", models.Note{Title: "x"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteService_CreateNote_RepositoryError(t *testing.T) {
	repo := &mockNoteRepository{
		createFn: func(_ context.Context, _ models.Note) (models.Note, error) {
			return models.Note{}, errRepo
		},
	}
	svc := newTestNoteService(repo)

	_, err := svc.CreateNote(context.Background(), "user-1", models.Note{Token: "t"})

	require.ErrorIs(t, err, errRepo)
}

// ─────────────────────────────────────────────
// ListNotes / GetNote
// ─────────────────────────────────────────────

func TestNoteService_ListNotes_Success(t *testing.T) {
	expected := []models.Note{{ID: "note-1"}, {ID: "note-2"}}
	repo := &mockNoteRepository{
		getByUser: func(_ context.Context, userID string) ([]models.Note, error) {
			assert.Equal(t, "user-1", userID)
			return expected, nil
		},
	}
	svc := newTestNoteService(repo)

	notes, err := svc.ListNotes(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, expected, notes)
}

func TestNoteService_ListNotes_EmptyUserID(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{})

	_, err := svc.ListNotes(context.Background(), "")

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteService_GetNote_NotFound(t *testing.T) {
	repo := &mockNoteRepository{
		getFn: func(_ context.Context, _ string) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	svc := newTestNoteService(repo)

	_, err := svc.GetNote(context.Background(), "missing")

	require.ErrorIs(t, err, store.ErrNoteNotFound)
}

// ─────────────────────────────────────────────
// UpdateNoteFields
// ─────────────────────────────────────────────

func TestNoteService_UpdateNoteFields_Success(t *testing.T) {
	token := "Zz9Yy8Xx7Ww6Vv5U"
	repo := &mockNoteRepository{
		updateFn: func(_ context.Context, id string, update models.NoteUpdate) (models.Note, error) {
			assert.Equal(t, "note-1", id)
			require.NotNil(t, update.Token)
			return models.Note{ID: id, Token: *update.Token}, nil
		},
	}
	svc := newTestNoteService(repo)

	note, err := svc.UpdateNoteFields(context.Background(), "note-1", models.NoteUpdate{Token: &token})

	require.NoError(t, err)
	assert.Equal(t, token, note.Token)
}

func TestNoteService_UpdateNoteFields_RejectsEmptyToken(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{})
	empty := ""

	_, err := svc.UpdateNoteFields(context.Background(), "note-1", models.NoteUpdate{Token: &empty})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteService_UpdateNoteFields_RejectsEmptyMemberList(t *testing.T) {
	svc := newTestNoteService(&mockNoteRepository{})
	none := []string{}

	_, err := svc.UpdateNoteFields(context.Background(), "note-1", models.NoteUpdate{UserIDs: &none})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteService_UpdateNoteFields_NotFound(t *testing.T) {
	title := "New title"
	repo := &mockNoteRepository{
		updateFn: func(_ context.Context, _ string, _ models.NoteUpdate) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	svc := newTestNoteService(repo)

	_, err := svc.UpdateNoteFields(context.Background(), "missing", models.NoteUpdate{Title: &title})

	require.ErrorIs(t, err, store.ErrNoteNotFound)
}

// ─────────────────────────────────────────────
// DeleteNote
// ─────────────────────────────────────────────

func TestNoteService_DeleteNote_Success(t *testing.T) {
	called := false
	repo := &mockNoteRepository{
		deleteFn: func(_ context.Context, id string) error {
			called = true
			assert.Equal(t, "note-1", id)
			return nil
		},
	}
	svc := newTestNoteService(repo)

	require.NoError(t, svc.DeleteNote(context.Background(), "note-1"))
	assert.True(t, called)
}

func TestNoteService_DeleteNote_NotFound(t *testing.T) {
	repo := &mockNoteRepository{
		deleteFn: func(_ context.Context, _ string) error {
			return store.ErrNoteNotFound
		},
	}
	svc := newTestNoteService(repo)

	err := svc.DeleteNote(context.Background(), "missing")

	require.ErrorIs(t, err, store.ErrNoteNotFound)
}
