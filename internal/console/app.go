package console

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
	"github.com/MKhiriev/go-wallet-admin/internal/store"
	"github.com/MKhiriev/go-wallet-admin/internal/tui"
	"github.com/MKhiriev/go-wallet-admin/models"
)

const actorPrefix = "console:"

type App struct {
	ui     UI
	db     *store.DB
	actor  string
	logger *logger.Logger
}

// NewApp opens the local audit database, applies its migrations and builds
// the console UI over the upstream adapters.
func NewApp(ctx context.Context, cfg *config.ConsoleConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	bundle, err := i18n.New(cfg.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	clientsAdapter, err := adapter.NewHTTPClientsAdapter(cfg.Adapter, nil, log)
	if err != nil {
		return nil, fmt.Errorf("create clients adapter: %w", err)
	}
	priceAdapter, err := adapter.NewHTTPPriceAdapter(cfg.Adapter, nil, log)
	if err != nil {
		return nil, fmt.Errorf("create price adapter: %w", err)
	}

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local storage: %w", err)
	}

	services := service.NewConsoleServices(
		store.NewConsoleRepositories(db, log),
		service.Adapters{ClientsAdapter: clientsAdapter, PriceAdapter: priceAdapter},
		nil,
		log,
	)

	actor := actorName()
	log.Debug().Str("actor", actor).Str("locale", bundle.DefaultTag().String()).Msg("console initialized")

	return &App{
		ui:     tui.New(services, bundle.Localizer(bundle.DefaultTag()), actor, buildInfo, log),
		db:     db,
		actor:  actor,
		logger: log,
	}, nil
}

// Run blocks until the operator leaves the console, then closes the local
// database.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.db.Close(); err != nil {
			a.logger.Err(err).Msg("error closing local storage")
		}
	}()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("console ui: %w", err)
	}
	return nil
}

// actorName identifies the operator in audit entries as console:<os user>.
func actorName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return actorPrefix + u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return actorPrefix + name
	}
	return actorPrefix + "unknown"
}
