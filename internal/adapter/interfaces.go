// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP adapters of go-wallet-admin.
//
// [ClientsAdapter] talks to the platform Clients API, which owns all client
// records. [PriceAdapter] fetches the USD price of one bitcoin from a
// CoinGecko-compatible price API. Both are built on resty through
// [utils.HTTPClient].
//
// HTTP status codes are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ClientsAdapter is the thin CRUD surface of the Clients API.
type ClientsAdapter interface {
	// GetClients returns every client record, in the order the API sends them.
	GetClients(ctx context.Context) ([]models.Client, error)

	// GetClient returns one client. Returns [ErrNotFound] (wrapped) when the
	// API does not know the id.
	GetClient(ctx context.Context, id string) (models.Client, error)

	// DeleteClient removes one client.
	DeleteClient(ctx context.Context, id string) error

	// GetTransactions returns the transaction history of one client.
	GetTransactions(ctx context.Context, id string) ([]models.Transaction, error)

	// RegisterClient forwards a landing-page registration. Returns
	// [ErrConflict] (wrapped) when the email is already registered.
	RegisterClient(ctx context.Context, registration models.Registration) error

	// Ping checks that the API answers at all.
	Ping(ctx context.Context) error
}

// PriceAdapter fetches exchange rates.
type PriceAdapter interface {
	// GetBTCRate returns the USD price of one bitcoin.
	GetBTCRate(ctx context.Context) (decimal.Decimal, error)

	// Ping checks that the price API answers at all.
	Ping(ctx context.Context) error
}

// RequestObserver is notified after every upstream call with the operation
// name and its outcome ("ok" or "error").
type RequestObserver interface {
	ObserveUpstream(op, outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveUpstream(string, string) {}
