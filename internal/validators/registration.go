package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-wallet-admin/models"
)

// Field name constants used to restrict registration validation to a subset
// of fields.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPassword  = "password"
)

const (
	minPasswordLength = 8
	maxNameLength     = 100
)

var defaultRegistrationFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword}

// RegistrationValidator checks landing-page sign-up forms before they are
// forwarded to the Clients API.
type RegistrationValidator struct {
}

// NewRegistrationValidator constructs a RegistrationValidator and returns it
// as the Validator interface.
func NewRegistrationValidator() Validator {
	return &RegistrationValidator{}
}

// Validate accepts models.Registration or *models.Registration. Without
// fields every field is checked; all failures are joined into one error.
func (v *RegistrationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegistration(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validateRegistration(_ context.Context, r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultRegistrationFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldFirstName:
			name := strings.TrimSpace(r.FirstName)
			if name == "" {
				errs = append(errs, ErrEmptyFirstName)
			} else if utf8.RuneCountInString(name) > maxNameLength {
				errs = append(errs, fmt.Errorf("%w: first name", ErrNameTooLong))
			}
		case FieldLastName:
			if utf8.RuneCountInString(strings.TrimSpace(r.LastName)) > maxNameLength {
				errs = append(errs, fmt.Errorf("%w: last name", ErrNameTooLong))
			}
		case FieldEmail:
			if !isValidEmail(r.Email) {
				errs = append(errs, ErrInvalidEmail)
			}
		case FieldPassword:
			if utf8.RuneCountInString(r.Password) < minPasswordLength {
				errs = append(errs, ErrShortPassword)
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}

	return errors.Join(errs...)
}

// isValidEmail accepts local@domain with both parts non-empty and no spaces.
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if strings.ContainsAny(email, " \t") {
		return false
	}

	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}
