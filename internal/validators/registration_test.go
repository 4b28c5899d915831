// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() models.Registration {
	return models.Registration{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
		Password:  "password1",
	}
}

func TestRegistrationValidator_Valid(t *testing.T) {
	v := NewRegistrationValidator()
	reg := validRegistration()

	assert.NoError(t, v.Validate(context.Background(), reg))
	assert.NoError(t, v.Validate(context.Background(), &reg))
}

func TestRegistrationValidator_UnsupportedType(t *testing.T) {
	v := NewRegistrationValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "nope"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Registration)(nil)), ErrUnsupportedType)
}

func TestRegistrationValidator_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.Registration)
		wantErr error
	}{
		{"empty first name", func(r *models.Registration) { r.FirstName = "  " }, ErrEmptyFirstName},
		{"long first name", func(r *models.Registration) { r.FirstName = strings.Repeat("a", 101) }, ErrNameTooLong},
		{"long last name", func(r *models.Registration) { r.LastName = strings.Repeat("b", 101) }, ErrNameTooLong},
		{"email without at", func(r *models.Registration) { r.Email = "ann.example.com" }, ErrInvalidEmail},
		{"email without local part", func(r *models.Registration) { r.Email = "@example.com" }, ErrInvalidEmail},
		{"email without domain", func(r *models.Registration) { r.Email = "ann@" }, ErrInvalidEmail},
		{"email with space", func(r *models.Registration) { r.Email = "ann lee@example.com" }, ErrInvalidEmail},
		{"short password", func(r *models.Registration) { r.Password = "1234567" }, ErrShortPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)

			err := NewRegistrationValidator().Validate(context.Background(), reg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistrationValidator_MultibytePassword(t *testing.T) {
	reg := validRegistration()
	reg.Password = "пароль12"

	assert.NoError(t, NewRegistrationValidator().Validate(context.Background(), reg))
}

func TestRegistrationValidator_JoinsAllErrors(t *testing.T) {
	err := NewRegistrationValidator().Validate(context.Background(), models.Registration{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyFirstName)
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.ErrorIs(t, err, ErrShortPassword)
}

func TestRegistrationValidator_FieldScoping(t *testing.T) {
	v := NewRegistrationValidator()
	reg := models.Registration{Email: "ann@example.com"}

	assert.NoError(t, v.Validate(context.Background(), reg, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), reg, FieldPassword), ErrShortPassword)
	assert.ErrorIs(t, v.Validate(context.Background(), reg, "age"), ErrUnknownField)
}
