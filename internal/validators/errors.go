package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyToken       = errors.New("share token is required")
	ErrEmptyUserIDs     = errors.New("member list cannot be empty")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
