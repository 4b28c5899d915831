package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/mock"
	"github.com/MKhiriev/go-wallet-admin/internal/validators"
	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func validReg() models.Registration {
	return models.Registration{FirstName: "Ann", Email: "ann@example.com", Password: "password1"}
}

func TestRegistrationService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	clients := mock.NewMockClientsAdapter(ctrl)
	clients.EXPECT().RegisterClient(gomock.Any(), validReg()).Return(nil)

	err := NewRegistrationService(clients, logger.Nop()).Register(context.Background(), validReg())
	assert.NoError(t, err)
}

func TestRegistrationService_Register_InvalidIsNotForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	clients := mock.NewMockClientsAdapter(ctrl)

	reg := validReg()
	reg.Email = "not-an-email"

	err := NewRegistrationService(clients, logger.Nop()).Register(context.Background(), reg)

	assert.ErrorIs(t, err, ErrInvalidRegistration)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestRegistrationService_Register_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	clients := mock.NewMockClientsAdapter(ctrl)
	clients.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).Return(adapter.ErrConflict)

	err := NewRegistrationService(clients, logger.Nop()).Register(context.Background(), validReg())

	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.NotErrorIs(t, err, ErrInvalidRegistration)
}
