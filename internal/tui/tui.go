// Package tui is the terminal console of the dashboard: a bubbletea program
// for browsing and deleting clients without the web UI.
package tui

import (
	"context"

	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
	"github.com/MKhiriev/go-wallet-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ConsoleServices
	localizer *i18n.Localizer
	actor     string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New builds the console. actor is recorded in the audit log of every
// delete.
func New(services *service.ConsoleServices, localizer *i18n.Localizer, actor string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		localizer: localizer,
		actor:     actor,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the operator quits.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)
	_, err := tea.NewProgram(newModel(ctx, t.services, t.localizer, t.actor, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("console stopped with error")
	}
	return err
}
