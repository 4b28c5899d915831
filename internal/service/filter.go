package service

import (
	"strings"

	"github.com/MKhiriev/go-wallet-admin/models"
)

// FilterClients returns the clients whose id, first name, last name, wallet
// address or balance contains query, ignoring case and surrounding
// whitespace. A blank query returns clients unchanged.
func FilterClients(clients []models.Client, query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients
	}

	filtered := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if matchesClient(c, q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func matchesClient(c models.Client, q string) bool {
	for _, field := range [...]string{c.ID, c.FirstName, c.LastName, c.WalletBTCAddress, c.BalanceString()} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
