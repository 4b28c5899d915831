package models

import (
	"github.com/shopspring/decimal"
)

// walletPlaceholder is shown instead of an empty BTC wallet address.
const walletPlaceholder = "N/A"

// Client is a platform account record as returned by the Clients API.
// The record is owned by the upstream service; the dashboard only reads and
// deletes it.
type Client struct {
	// ID is the opaque upstream identifier of the client.
	ID string `json:"_id"`

	// FirstName is the optional given name of the client.
	FirstName string `json:"firstName,omitempty"`

	// LastName is the optional family name of the client.
	LastName string `json:"lastName,omitempty"`

	// WalletBTCAddress is the optional BTC wallet address bound to the account.
	WalletBTCAddress string `json:"walletBTCAddress,omitempty"`

	// Balance is the account balance denominated in USD. The upstream API
	// serializes it either as a JSON number or as a string; both decode.
	Balance decimal.Decimal `json:"balance"`
}

// BalanceString returns the shortest decimal representation of the balance
// ("100", "12.5"). It is the form used when matching search queries.
func (c Client) BalanceString() string {
	return c.Balance.String()
}

// DisplayBalance returns the balance rounded to cents ("100.00").
func (c Client) DisplayBalance() string {
	return c.Balance.StringFixed(2)
}

// DisplayWallet returns the wallet address or "N/A" when none is set.
func (c Client) DisplayWallet() string {
	if c.WalletBTCAddress == "" {
		return walletPlaceholder
	}
	return c.WalletBTCAddress
}

// FullName joins first and last name, skipping empty parts.
func (c Client) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}
