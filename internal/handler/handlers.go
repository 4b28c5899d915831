package handler

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/handler/grpc"
	"github.com/MKhiriev/go-wallet-admin/internal/handler/http"
	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/metrics"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
	"github.com/MKhiriev/go-wallet-admin/internal/web"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler per configured address. m may be
// nil.
func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		renderer, err := web.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("error loading page templates: %w", err)
		}
		bundle, err := i18n.New(cfg.App.DefaultLocale)
		if err != nil {
			return nil, fmt.Errorf("error loading translations: %w", err)
		}

		deps := http.Dependencies{Renderer: renderer, Bundle: bundle, Metrics: m}
		handlers.HTTP = http.NewHandler(services, deps, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
