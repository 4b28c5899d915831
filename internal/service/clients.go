package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/utils"
	"github.com/MKhiriev/go-wallet-admin/models"
)

// clientService is the concrete implementation of ClientService.
type clientService struct {
	clientsAdapter adapter.ClientsAdapter
	auditService   AuditService
	recorder       MetricsRecorder
	uuidGenerator  *utils.UUIDGenerator
	now            func() time.Time
	logger         *logger.Logger
}

// NewClientService constructs a ClientService. auditService and recorder may
// be nil, which disables auditing and metrics respectively.
func NewClientService(clientsAdapter adapter.ClientsAdapter, auditService AuditService, recorder MetricsRecorder, logger *logger.Logger) ClientService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &clientService{
		clientsAdapter: clientsAdapter,
		auditService:   auditService,
		recorder:       recorder,
		uuidGenerator:  utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (s *clientService) List(ctx context.Context, query string) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	clients, err := s.clientsAdapter.GetClients(ctx)
	if err != nil {
		log.Err(err).Str("func", "*clientService.List").Msg("error fetching clients")
		return nil, fmt.Errorf("error fetching clients: %w", err)
	}

	return FilterClients(clients, query), nil
}

func (s *clientService) Get(ctx context.Context, id string) (models.Client, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(id) == "" {
		return models.Client{}, ErrEmptyClientID
	}

	client, err := s.clientsAdapter.GetClient(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*clientService.Get").Str("client_id", id).Msg("error fetching client")
		return models.Client{}, fmt.Errorf("error fetching client %s: %w", id, err)
	}

	return client, nil
}

func (s *clientService) Transactions(ctx context.Context, id string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyClientID
	}

	transactions, err := s.clientsAdapter.GetTransactions(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*clientService.Transactions").Str("client_id", id).Msg("error fetching transactions")
		return nil, fmt.Errorf("error fetching transactions of client %s: %w", id, err)
	}

	return transactions, nil
}

// Delete removes the client upstream. The audit entry is written only after
// a successful delete; an audit failure is logged and not returned.
func (s *clientService) Delete(ctx context.Context, actor, id string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(id) == "" {
		return ErrEmptyClientID
	}

	if err := s.clientsAdapter.DeleteClient(ctx, id); err != nil {
		log.Err(err).Str("func", "*clientService.Delete").Str("client_id", id).Msg("error deleting client")
		return fmt.Errorf("error deleting client %s: %w", id, err)
	}

	log.Info().Str("actor", actor).Str("client_id", id).Msg("client deleted")
	s.recorder.IncrementClientsDeleted()

	if s.auditService != nil {
		entry := models.AuditEntry{
			EntryID:   s.uuidGenerator.Generate(),
			Actor:     actor,
			Action:    models.AuditClientDelete,
			TargetID:  id,
			CreatedAt: s.now().UTC(),
		}
		if err := s.auditService.Record(ctx, entry); err != nil {
			log.Err(err).Str("func", "*clientService.Delete").Str("client_id", id).Msg("error recording audit entry")
		}
	}

	return nil
}

func (s *clientService) DeleteAndReload(ctx context.Context, actor, id, query string) ([]models.Client, error) {
	if err := s.Delete(ctx, actor, id); err != nil {
		return nil, err
	}

	return s.List(ctx, query)
}
