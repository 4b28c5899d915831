package web

import (
	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/models"
)

// Page carries what the layout needs on every page.
type Page struct {
	// L translates message keys.
	L *i18n.Localizer

	// Title is the message key of the page title.
	Title string

	// Admin is the login of the signed-in operator, empty for visitors.
	Admin string

	// CSRFToken is embedded into every form that changes state.
	CSRFToken string

	Languages []Language
}

// Language is one entry of the language switcher.
type Language struct {
	Label  string
	URL    string
	Active bool
}

// LandingFeatures are the message keys of the landing feature list.
var LandingFeatures = []string{"unique", "minimum", "maximum"}

type LandingView struct {
	Page
	Features   []string
	ModalOpen  bool
	Registered bool
	Form       models.Registration
	Error      string
}

type LoginView struct {
	Page
	Login string
	Error string
}

// ClientsView is the client list. When Error is set nothing but the error is
// shown. A non-empty ConfirmID opens the delete dialog for that client.
type ClientsView struct {
	Page
	Clients      []models.Client
	Query        string
	Error        string
	ConfirmID    string
	ConfirmError string
}

type ClientView struct {
	Page
	Client  models.Client
	Card    models.BalanceCard
	ShowBTC bool
}

type TransactionsView struct {
	Page
	ClientID     string
	Transactions []models.Transaction
}

type AuditView struct {
	Page
	Entries []models.AuditEntry
}

type ErrorView struct {
	Page
	Status  int
	Message string
}
