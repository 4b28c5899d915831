// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/models"
)

func renderBuildInfoWindow(l *i18n.Localizer, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Wallet Admin console\n")
	b.WriteString(l.T("version") + ": " + info.BuildVersion() + "\n")
	b.WriteString(l.T("build date") + ": " + info.BuildDate() + "\n")
	b.WriteString(l.T("commit") + ": " + info.BuildCommit())

	return renderPage(l.T("about"), b.String(), "esc: "+l.T("back"))
}
