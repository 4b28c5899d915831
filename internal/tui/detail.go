package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/models"
)

// detailModel shows one client with its balance card.
type detailModel struct {
	client  models.Client
	card    models.BalanceCard
	showBTC bool
	loading bool
	status  string
}

func (m detailModel) View(l *i18n.Localizer, spin string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Id:       %s\n", m.client.ID)
	fmt.Fprintf(&b, "%s: %s\n", l.T("first name"), m.client.FirstName)
	fmt.Fprintf(&b, "%s: %s\n", l.T("last name"), m.client.LastName)
	fmt.Fprintf(&b, "%s: %s\n\n", l.T("wallet"), m.client.DisplayWallet())

	b.WriteString(l.T("your balance") + "\n")
	if m.loading {
		b.WriteString(spin)
	} else {
		b.WriteString(balanceStyle.Render("$ " + m.card.USDString()))
		switch {
		case m.card.BTCError != "":
			b.WriteString("\n" + errorStyle.Render(l.T(m.card.BTCError)))
		case m.card.HasBTC():
			b.WriteString("\n" + balanceStyle.Render(m.card.BTCString()+" BTC"))
		}
	}

	if m.status != "" {
		b.WriteString("\n\n" + statusStyle.Render(m.status))
	}

	btcHint := "b " + strings.ToLower(l.T("show btc"))
	if m.showBTC {
		btcHint = "b " + strings.ToLower(l.T("hide btc"))
	}
	return renderPage(l.T("client")+" | "+m.client.FullName(), b.String(), btcHint+"  c copy wallet  ctrl+d "+strings.ToLower(l.T("delete"))+"  esc "+strings.ToLower(l.T("back")))
}
