package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/store"
	"github.com/MKhiriev/go-wallet-admin/models"
)

type auditService struct {
	auditRepository store.AuditRepository
	logger          *logger.Logger
}

func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

func (s *auditService) Record(ctx context.Context, entry models.AuditEntry) error {
	if err := s.auditRepository.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("error saving audit entry: %w", err)
	}
	return nil
}

func (s *auditService) Recent(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error) {
	entries, err := s.auditRepository.ListEntries(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*auditService.Recent").Msg("error listing audit entries")
		return nil, fmt.Errorf("error listing audit entries: %w", err)
	}
	return entries, nil
}
