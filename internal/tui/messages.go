package tui

import "github.com/MKhiriev/go-wallet-admin/models"

type clientsLoadedMsg struct {
	clients []models.Client
	err     error
}

// deleteDoneMsg carries the list fetched right after a delete.
type deleteDoneMsg struct {
	id      string
	clients []models.Client
	err     error
}

type cardLoadedMsg struct {
	id   string
	card models.BalanceCard
}

type copiedMsg struct {
	err error
}
