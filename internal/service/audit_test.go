package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/mock"
	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAuditRepository(ctrl)
	entry := models.AuditEntry{Actor: "web:root", Action: models.AuditClientDelete, TargetID: "a1"}

	repo.EXPECT().SaveEntry(gomock.Any(), entry).Return(nil)
	assert.NoError(t, NewAuditService(repo, logger.Nop()).Record(context.Background(), entry))

	repo.EXPECT().SaveEntry(gomock.Any(), entry).Return(errors.New("locked"))
	assert.Error(t, NewAuditService(repo, logger.Nop()).Record(context.Background(), entry))
}

func TestAuditService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAuditRepository(ctrl)
	filter := models.AuditFilter{Limit: 10}
	entries := []models.AuditEntry{{TargetID: "a1"}, {TargetID: "b2"}}

	repo.EXPECT().ListEntries(gomock.Any(), filter).Return(entries, nil)

	got, err := NewAuditService(repo, logger.Nop()).Recent(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestAuditService_Recent_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAuditRepository(ctrl)
	repo.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	_, err := NewAuditService(repo, logger.Nop()).Recent(context.Background(), models.AuditFilter{})
	assert.ErrorIs(t, err, assert.AnError)
}
