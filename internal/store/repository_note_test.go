package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/models"
)

var testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestNoteRepo(t *testing.T) (*NoteRepositoryPostgres, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := NewNoteRepository(&DB{DB: db, logger: l}, l)
	repo.now = func() time.Time { return testTime }
	return repo, mock, db
}

func noteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "content", "user_ids", "token", "security_password", "created_at", "updated_at",
	})
}

func TestCreateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	note := models.Note{
		Title:   "Groceries",
		Content: "milk, eggs",
		UserIDs: []string{"user-1"},
		Token:   "Aa0Bb1Cc2Dd3Ee4F",
	}

	mock.ExpectExec("INSERT INTO notes").
		WithArgs(sqlmock.AnyArg(), note.Title, note.Content, []byte(`["user-1"]`), note.Token, note.SecurityPassword, testTime, testTime).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateNote(ctx, note)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an assigned note id")
	}
	if !created.CreatedAt.Equal(testTime) || !created.UpdatedAt.Equal(testTime) {
		t.Errorf("expected both timestamps stamped to %v, got %v / %v", testTime, created.CreatedAt, created.UpdatedAt)
	}
}

func TestCreateNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO notes").
		WillReturnError(errors.New("db failure"))

	_, err := repo.CreateNote(ctx, models.Note{Title: "x", UserIDs: []string{"user-1"}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := noteRows().
		AddRow("note-1", "Groceries", "milk", []byte(`["user-1","user-2"]`), "Aa0Bb1Cc2Dd3Ee4F", "", testTime, testTime)

	mock.ExpectQuery("SELECT id, title, content").
		WithArgs("note-1").
		WillReturnRows(rows)

	note, err := repo.GetNote(ctx, "note-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !note.HasMember("user-2") {
		t.Error("expected user-2 to be a member")
	}
	if note.Token != "Aa0Bb1Cc2Dd3Ee4F" {
		t.Errorf("unexpected token %q", note.Token)
	}
}

func TestGetNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, content").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetNote(ctx, "missing")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestGetNotesByUserID_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := noteRows().
		AddRow("note-2", "Second", "b", []byte(`["user-1"]`), "t2", "", testTime, testTime.Add(time.Hour)).
		AddRow("note-1", "First", "a", []byte(`["user-1","user-2"]`), "t1", "gate", testTime, testTime)

	mock.ExpectQuery("SELECT id, title, content").
		WithArgs(`["user-1"]`).
		WillReturnRows(rows)

	notes, err := repo.GetNotesByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != "note-2" {
		t.Errorf("expected most recently updated note first, got %s", notes[0].ID)
	}
}

func TestGetNotesByUserID_Empty(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, content").
		WithArgs(`["user-1"]`).
		WillReturnRows(noteRows())

	notes, err := repo.GetNotesByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", notes)
	}
}

func TestUpdateNoteFields_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	token := "Zz9Yy8Xx7Ww6Vv5U"
	update := models.NoteUpdate{Token: &token}

	rows := noteRows().
		AddRow("note-1", "Groceries", "milk", []byte(`["user-1"]`), token, "", testTime, testTime)

	mock.ExpectQuery("UPDATE notes").
		WithArgs(token, testTime, "note-1").
		WillReturnRows(rows)

	note, err := repo.UpdateNoteFields(ctx, "note-1", update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.Token != token {
		t.Errorf("expected token %q, got %q", token, note.Token)
	}
}

func TestUpdateNoteFields_MemberList(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	members := []string{"user-1", "user-2"}
	update := models.NoteUpdate{UserIDs: &members}

	rows := noteRows().
		AddRow("note-1", "Groceries", "milk", []byte(`["user-1","user-2"]`), "t1", "", testTime, testTime)

	mock.ExpectQuery("UPDATE notes").
		WithArgs([]byte(`["user-1","user-2"]`), testTime, "note-1").
		WillReturnRows(rows)

	note, err := repo.UpdateNoteFields(ctx, "note-1", update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !note.HasMember("user-2") {
		t.Error("expected user-2 to be a member after update")
	}
}

func TestUpdateNoteFields_Empty(t *testing.T) {
	repo, _, db := newTestNoteRepo(t)
	defer db.Close()

	_, err := repo.UpdateNoteFields(context.Background(), "note-1", models.NoteUpdate{})
	if !errors.Is(err, ErrEmptyNoteUpdate) {
		t.Fatalf("expected ErrEmptyNoteUpdate, got %v", err)
	}
}

func TestUpdateNoteFields_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	title := "New title"

	mock.ExpectQuery("UPDATE notes").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateNoteFields(ctx, "missing", models.NoteUpdate{Title: &title})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestDeleteNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("note-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteNote(context.Background(), "note-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteNote(context.Background(), "missing")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
