// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-notes/models"
)

func validUser() models.User {
	return models.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}
}

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("value and pointer accepted", func(t *testing.T) {
		user := validUser()
		require.NoError(t, v.Validate(ctx, user))
		require.NoError(t, v.Validate(ctx, &user))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validUser(), "no_such_field")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestUserValidator_Validate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(u *models.User)
		wantErr error
	}{
		{name: "valid", mutate: func(u *models.User) {}, wantErr: nil},
		{name: "empty name", mutate: func(u *models.User) { u.Name = "" }, wantErr: ErrEmptyName},
		{name: "empty email", mutate: func(u *models.User) { u.Email = "" }, wantErr: ErrInvalidEmail},
		{name: "email without at sign", mutate: func(u *models.User) { u.Email = "alice.example.com" }, wantErr: ErrInvalidEmail},
		{name: "email without domain", mutate: func(u *models.User) { u.Email = "alice@localhost" }, wantErr: ErrInvalidEmail},
		{name: "email with spaces", mutate: func(u *models.User) { u.Email = "a lice@example.com" }, wantErr: ErrInvalidEmail},
		{name: "empty password", mutate: func(u *models.User) { u.Password = "" }, wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(&user)

			err := v.Validate(ctx, user)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	// only the requested field is checked
	user := models.User{Email: "alice@example.com"}
	require.NoError(t, v.Validate(ctx, user, FieldEmail))
	require.ErrorIs(t, v.Validate(ctx, user, FieldName), ErrEmptyName)
}
