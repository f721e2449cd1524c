// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/models"
)

// UserRepositoryPostgres stores user accounts in PostgreSQL.
type UserRepositoryPostgres struct {
	db      *DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

func NewUserRepository(db *DB, log *logger.Logger) *UserRepositoryPostgres {
	return &UserRepositoryPostgres{
		db:      db,
		logger:  log,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepositoryPostgres) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := r.logger.With().Str("func", "UserRepositoryPostgres.CreateUser").Logger()

	query, args, err := r.builder.
		Insert(user.TableName()).
		Columns("id", "name", "email", "password", "security_password", "created_at").
		Values(user.ID, user.Name, user.Email, user.Password, user.SecurityPassword, user.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building insert query")
		return models.User{}, fmt.Errorf("error building insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Warn().Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Msg("error inserting user")
		return models.User{}, fmt.Errorf("error inserting user: %w", err)
	}

	return user, nil
}

func (r *UserRepositoryPostgres) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := r.logger.With().Str("func", "UserRepositoryPostgres.FindUserByEmail").Logger()

	query, args, err := r.builder.
		Select("id", "name", "email", "password", "security_password", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building select query")
		return models.User{}, fmt.Errorf("error building select query: %w", err)
	}

	return r.scanUser(ctx, log, query, args...)
}

func (r *UserRepositoryPostgres) GetUser(ctx context.Context, id string) (models.User, error) {
	log := r.logger.With().Str("func", "UserRepositoryPostgres.GetUser").Logger()

	query, args, err := r.builder.
		Select("id", "name", "email", "password", "security_password", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Msg("error building select query")
		return models.User{}, fmt.Errorf("error building select query: %w", err)
	}

	return r.scanUser(ctx, log, query, args...)
}

func (r *UserRepositoryPostgres) scanUser(ctx context.Context, log zerolog.Logger, query string, args ...any) (models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.SecurityPassword, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Msg("error scanning user row")
		return models.User{}, fmt.Errorf("error scanning user row: %w", err)
	}

	return user, nil
}
