package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName = errors.New("first name is required")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrShortPassword  = errors.New("password is too short")
	ErrNameTooLong    = errors.New("name is too long")
)
