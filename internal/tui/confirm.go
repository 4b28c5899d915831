package tui

import "github.com/MKhiriev/go-wallet-admin/internal/i18n"

// confirmModel is the delete confirmation overlay. errKey holds the message
// key of the last failed attempt; the overlay stays open so it can be retried.
type confirmModel struct {
	id     string
	name   string
	errKey string
}

func (m confirmModel) View(l *i18n.Localizer, deleting bool, spin string) string {
	content := l.T("want to delete") + "\n"
	if m.name != "" {
		content += "\n" + m.name + " (" + m.id + ")\n"
	} else {
		content += "\n" + m.id + "\n"
	}

	if m.errKey != "" {
		content += "\n" + errorStyle.Render(l.T(m.errKey)) + "\n"
	}

	if deleting {
		content += "\n" + spin
	} else {
		content += "\ny " + l.T("yes") + "    n " + l.T("no")
	}
	return overlayBoxStyle.Render(content)
}
