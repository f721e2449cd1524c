// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/utils"
	"github.com/MKhiriev/go-qr-notes/models"
)

const noteColumns = "id, title, content, user_ids, token, security_password, created_at, updated_at"

// NoteRepositoryPostgres stores notes in PostgreSQL. The member list of a
// note is kept as a JSONB array of user ids so that membership lookups use
// the containment operator.
type NoteRepositoryPostgres struct {
	db      *DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
	ids     *utils.UUIDGenerator
	now     func() time.Time
}

func NewNoteRepository(db *DB, log *logger.Logger) *NoteRepositoryPostgres {
	return &NoteRepositoryPostgres{
		db:      db,
		logger:  log,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
	}
}

func (r *NoteRepositoryPostgres) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := r.logger.With().Str("func", "NoteRepositoryPostgres.CreateNote").Logger()

	note.ID = r.ids.Generate()
	now := r.now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	members, err := json.Marshal(note.UserIDs)
	if err != nil {
		log.Err(err).Msg("error encoding member list")
		return models.Note{}, fmt.Errorf("error encoding member list: %w", err)
	}

	query, args, err := r.builder.
		Insert(note.TableName()).
		Columns("id", "title", "content", "user_ids", "token", "security_password", "created_at", "updated_at").
		Values(note.ID, note.Title, note.Content, members, note.Token, note.SecurityPassword, note.CreatedAt, note.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building insert query")
		return models.Note{}, fmt.Errorf("error building insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("error inserting note")
		return models.Note{}, fmt.Errorf("error inserting note: %w", err)
	}

	return note, nil
}

func (r *NoteRepositoryPostgres) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := r.logger.With().Str("func", "NoteRepositoryPostgres.GetNote").Logger()

	query, args, err := r.builder.
		Select("id", "title", "content", "user_ids", "token", "security_password", "created_at", "updated_at").
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building select query")
		return models.Note{}, fmt.Errorf("error building select query: %w", err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("note_id", id).Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("error scanning note row: %w", err)
	}

	return note, nil
}

func (r *NoteRepositoryPostgres) GetNotesByUserID(ctx context.Context, userID string) ([]models.Note, error) {
	log := r.logger.With().Str("func", "NoteRepositoryPostgres.GetNotesByUserID").Logger()

	member, err := json.Marshal([]string{userID})
	if err != nil {
		log.Err(err).Msg("error encoding member filter")
		return nil, fmt.Errorf("error encoding member filter: %w", err)
	}

	query, args, err := r.builder.
		Select("id", "title", "content", "user_ids", "token", "security_password", "created_at", "updated_at").
		From(models.Note{}.TableName()).
		Where(sq.Expr("user_ids @> ?::jsonb", string(member))).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building select query")
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error querying notes")
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Err(err).Msg("error scanning note row")
			return nil, fmt.Errorf("error scanning note row: %w", err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error iterating note rows")
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}

func (r *NoteRepositoryPostgres) UpdateNoteFields(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	log := r.logger.With().Str("func", "NoteRepositoryPostgres.UpdateNoteFields").Logger()

	builder := r.builder.Update(models.Note{}.TableName())
	changed := false

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		changed = true
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
		changed = true
	}
	if update.SecurityPassword != nil {
		builder = builder.Set("security_password", *update.SecurityPassword)
		changed = true
	}
	if update.Token != nil {
		builder = builder.Set("token", *update.Token)
		changed = true
	}
	if update.UserIDs != nil {
		members, err := json.Marshal(*update.UserIDs)
		if err != nil {
			log.Err(err).Msg("error encoding member list")
			return models.Note{}, fmt.Errorf("error encoding member list: %w", err)
		}
		builder = builder.Set("user_ids", members)
		changed = true
	}
	if !changed {
		return models.Note{}, ErrEmptyNoteUpdate
	}

	query, args, err := builder.
		Set("updated_at", r.now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + noteColumns).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building update query")
		return models.Note{}, fmt.Errorf("error building update query: %w", err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("note_id", id).Msg("error scanning updated note row")
		return models.Note{}, fmt.Errorf("error scanning updated note row: %w", err)
	}

	return note, nil
}

func (r *NoteRepositoryPostgres) DeleteNote(ctx context.Context, id string) error {
	log := r.logger.With().Str("func", "NoteRepositoryPostgres.DeleteNote").Logger()

	query, args, err := r.builder.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building delete query")
		return fmt.Errorf("error building delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("note_id", id).Msg("error deleting note")
		return fmt.Errorf("error deleting note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Msg("error reading affected rows")
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	var members []byte

	err := row.Scan(
		&note.ID, &note.Title, &note.Content, &members,
		&note.Token, &note.SecurityPassword, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	if err = json.Unmarshal(members, &note.UserIDs); err != nil {
		return models.Note{}, fmt.Errorf("error decoding member list: %w", err)
	}

	return note, nil
}
