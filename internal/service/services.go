package service

import (
	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/store"
)

// Adapters groups the outbound adapters the services depend on.
type Adapters struct {
	ClientsAdapter adapter.ClientsAdapter
	PriceAdapter   adapter.PriceAdapter
}

// Services groups every service of the dashboard server.
type Services struct {
	ClientService       ClientService
	BalanceService      BalanceService
	RegistrationService RegistrationService
	AuthService         AuthService
	AuditService        AuditService
	AppInfoService      AppInfoService
}

// NewServices wires the server services. recorder may be nil.
func NewServices(repositories *store.Repositories, adapters Adapters, cfg config.StructuredConfig, recorder MetricsRecorder, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	auditService := NewAuditService(repositories.AuditRepository, logger)

	return &Services{
		ClientService:       NewClientService(adapters.ClientsAdapter, auditService, recorder, logger),
		BalanceService:      NewBalanceService(adapters.PriceAdapter, recorder, logger),
		RegistrationService: NewRegistrationService(adapters.ClientsAdapter, logger),
		AuthService:         NewAuthService(repositories.AdminRepository, cfg.App, logger),
		AuditService:        auditService,
		AppInfoService:      appInfoService,
	}, nil
}

// ConsoleServices groups the services used by the terminal console.
type ConsoleServices struct {
	ClientService  ClientService
	BalanceService BalanceService
	AuditService   AuditService
}

// NewConsoleServices wires the console services over its local repositories.
func NewConsoleServices(repositories *store.ConsoleRepositories, adapters Adapters, recorder MetricsRecorder, logger *logger.Logger) *ConsoleServices {
	auditService := NewAuditService(repositories.AuditRepository, logger)

	return &ConsoleServices{
		ClientService:  NewClientService(adapters.ClientsAdapter, auditService, recorder, logger),
		BalanceService: NewBalanceService(adapters.PriceAdapter, recorder, logger),
		AuditService:   auditService,
	}
}
