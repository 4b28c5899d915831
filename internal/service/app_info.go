package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
)

// appInfoService answers GET /api/version with the dashboard version.
type appInfoService struct {
	version string
}

// NewAppInfoService fails when cfg carries no version. The server binary
// falls back to its linker-injected build version before calling it.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service initialized")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
