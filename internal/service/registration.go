package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/validators"
	"github.com/MKhiriev/go-wallet-admin/models"
)

type registrationService struct {
	clientsAdapter adapter.ClientsAdapter
	validator      validators.Validator
	logger         *logger.Logger
}

// NewRegistrationService constructs a RegistrationService that validates
// forms with validators.RegistrationValidator.
func NewRegistrationService(clientsAdapter adapter.ClientsAdapter, logger *logger.Logger) RegistrationService {
	return &registrationService{
		clientsAdapter: clientsAdapter,
		validator:      validators.NewRegistrationValidator(),
		logger:         logger,
	}
}

// Register validates the form and forwards it to the Clients API.
//
// Returns ErrInvalidRegistration wrapping the validation failures, or the
// wrapped adapter error (adapter.ErrConflict when the email is taken).
func (s *registrationService) Register(ctx context.Context, registration models.Registration) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, registration); err != nil {
		log.Debug().Err(err).Str("email", registration.Email).Msg("registration rejected")
		return fmt.Errorf("%w: %w", ErrInvalidRegistration, err)
	}

	if err := s.clientsAdapter.RegisterClient(ctx, registration); err != nil {
		log.Err(err).Str("func", "*registrationService.Register").Str("email", registration.Email).Msg("error forwarding registration")
		return fmt.Errorf("error forwarding registration: %w", err)
	}

	log.Info().Str("email", registration.Email).Msg("client registered")
	return nil
}
