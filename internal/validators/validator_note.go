package validators

import (
	"context"

	"github.com/MKhiriev/go-qr-notes/models"
)

const (
	FieldToken   = "token"
	FieldUserIDs = "user_ids"
)

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if note.Token == "" {
				return ErrEmptyToken
			}
		case FieldUserIDs:
			if len(note.UserIDs) == 0 {
				return ErrEmptyUserIDs
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNoteUpdate checks a partial update. A nil field is untouched by
// the persistence layer and therefore always valid; a set field must not be
// empty. An update with no set fields at all is rejected.
func (v *NoteValidator) validateNoteUpdate(_ context.Context, update models.NoteUpdate, _ ...string) error {
	if update.Title == nil && update.Content == nil && update.SecurityPassword == nil &&
		update.Token == nil && update.UserIDs == nil {
		return ErrNoFieldsToUpdate
	}

	if update.Token != nil && *update.Token == "" {
		return ErrEmptyToken
	}
	if update.UserIDs != nil && len(*update.UserIDs) == 0 {
		return ErrEmptyUserIDs
	}

	return nil
}
