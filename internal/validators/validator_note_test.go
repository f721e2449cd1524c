package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-notes/models"
)

func TestNoteValidator_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.Note{Token: "Aa0Bb1Cc2Dd3Ee4F"}, "no_such_field")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestNoteValidator_ValidateNote(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	t.Run("token required by default", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.Note{Title: "Groceries"}), ErrEmptyToken)
		require.NoError(t, v.Validate(ctx, models.Note{Token: "Aa0Bb1Cc2Dd3Ee4F"}))
	})

	t.Run("member list scoped check", func(t *testing.T) {
		note := models.Note{Token: "Aa0Bb1Cc2Dd3Ee4F"}
		require.ErrorIs(t, v.Validate(ctx, note, FieldUserIDs), ErrEmptyUserIDs)

		note.UserIDs = []string{"user-1"}
		require.NoError(t, v.Validate(ctx, &note, FieldUserIDs))
	})
}

func TestNoteValidator_ValidateNoteUpdate(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	title := "New title"
	emptyToken := ""
	token := "Aa0Bb1Cc2Dd3Ee4F"
	var noMembers []string
	members := []string{"user-1"}

	tests := []struct {
		name    string
		update  models.NoteUpdate
		wantErr error
	}{
		{name: "no fields set", update: models.NoteUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "title only", update: models.NoteUpdate{Title: &title}, wantErr: nil},
		{name: "empty token set", update: models.NoteUpdate{Token: &emptyToken}, wantErr: ErrEmptyToken},
		{name: "token set", update: models.NoteUpdate{Token: &token}, wantErr: nil},
		{name: "empty member list set", update: models.NoteUpdate{UserIDs: &noMembers}, wantErr: ErrEmptyUserIDs},
		{name: "member list set", update: models.NoteUpdate{UserIDs: &members}, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
