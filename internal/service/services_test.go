package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/mock"
	"github.com/MKhiriev/go-wallet-admin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewAppInfoService(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))

	svc, err = NewAppInfoService(config.App{Version: " v2.0.0\n"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", svc.GetAppVersion(context.Background()))

	for _, version := range []string{"", "   "} {
		svc, err = NewAppInfoService(config.App{Version: version}, logger.Nop())
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	}
}

func TestNewServices_WiresEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	repos := &store.Repositories{
		AdminRepository: mock.NewMockAdminRepository(ctrl),
		AuditRepository: mock.NewMockAuditRepository(ctrl),
	}
	adapters := Adapters{
		ClientsAdapter: mock.NewMockClientsAdapter(ctrl),
		PriceAdapter:   mock.NewMockPriceAdapter(ctrl),
	}

	services, err := NewServices(repos, adapters, config.StructuredConfig{App: config.App{Version: "1.0.0"}}, nil, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.ClientService)
	assert.NotNil(t, services.BalanceService)
	assert.NotNil(t, services.RegistrationService)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AuditService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_RequiresVersion(t *testing.T) {
	_, err := NewServices(&store.Repositories{}, Adapters{}, config.StructuredConfig{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewConsoleServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := NewConsoleServices(
		&store.ConsoleRepositories{AuditRepository: mock.NewMockAuditRepository(ctrl)},
		Adapters{ClientsAdapter: mock.NewMockClientsAdapter(ctrl), PriceAdapter: mock.NewMockPriceAdapter(ctrl)},
		nil,
		logger.Nop(),
	)

	assert.NotNil(t, services.ClientService)
	assert.NotNil(t, services.BalanceService)
	assert.NotNil(t, services.AuditService)
}
