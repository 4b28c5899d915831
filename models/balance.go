package models

import "github.com/shopspring/decimal"

// btcPlaces is the number of decimal places a BTC amount is shown with.
const btcPlaces = 8

// BalanceCard is the view model of the balance widget: the USD balance and,
// when requested and available, its BTC equivalent.
type BalanceCard struct {
	// USD is the balance in US dollars.
	USD decimal.Decimal `json:"usd"`

	// BTC is the converted amount. Nil when conversion was not requested or
	// the rate could not be fetched.
	BTC *decimal.Decimal `json:"btc,omitempty"`

	// BTCError holds the user-facing message of a failed rate fetch.
	BTCError string `json:"btc_error,omitempty"`
}

// HasBTC reports whether the card carries a converted amount.
func (b BalanceCard) HasBTC() bool {
	return b.BTC != nil
}

// BTCString formats the converted amount with exactly 8 decimal places.
// Returns an empty string when the card has no BTC amount.
func (b BalanceCard) BTCString() string {
	if b.BTC == nil {
		return ""
	}
	return b.BTC.StringFixed(btcPlaces)
}

// USDString returns the USD balance in its shortest form.
func (b BalanceCard) USDString() string {
	return b.USD.String()
}
