package http

import (
	"time"

	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/metrics"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
	"github.com/MKhiriev/go-wallet-admin/internal/web"
)

// Dependencies are the collaborators of Handler besides the services.
// Metrics may be nil.
type Dependencies struct {
	Renderer *web.Renderer
	Bundle   *i18n.Bundle
	Metrics  *metrics.Metrics
}

type Handler struct {
	services *service.Services
	renderer *web.Renderer
	bundle   *i18n.Bundle
	metrics  *metrics.Metrics

	// hashKey derives the CSRF tokens of session forms.
	hashKey        string
	sessionTTL     time.Duration
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		renderer:       deps.Renderer,
		bundle:         deps.Bundle,
		metrics:        deps.Metrics,
		hashKey:        cfg.App.HashKey,
		sessionTTL:     cfg.App.TokenDuration,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
