package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single entry of a client's transaction history.
type Transaction struct {
	ID        string          `json:"_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}

// DisplayAmount returns the amount rounded to cents.
func (t Transaction) DisplayAmount() string {
	return t.Amount.StringFixed(2)
}
