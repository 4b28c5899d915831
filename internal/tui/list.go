package tui

import (
	"fmt"
	"strings"
)

const (
	nameWidth   = 24
	walletWidth = 36
)

func (m model) viewList() string {
	var b strings.Builder

	title := m.l.T("admin menu") + " | " + m.l.T("clients")
	if m.busy() {
		title += "  " + m.spinner.View()
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.l.T("loading"))
	case m.errKey != "":
		b.WriteString(errorStyle.Render(m.l.T(m.errKey)))
	default:
		clients := m.visible()
		fmt.Fprintf(&b, "%d %s\n\n", len(clients), m.l.T("found"))
		for i, c := range clients {
			cursor := "  "
			line := fmt.Sprintf("%-3d %-*s %-*s %s",
				i+1,
				nameWidth, fitText(c.FullName(), nameWidth),
				walletWidth, fitText(c.DisplayWallet(), walletWidth),
				c.DisplayBalance())
			if i == m.idx {
				cursor = "> "
				line = cursorStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	return renderPage(title, b.String(), "↑/↓ move  / "+strings.ToLower(m.l.T("filter"))+"  enter open  ctrl+d "+strings.ToLower(m.l.T("delete"))+"  r reload  v info  q quit")
}
