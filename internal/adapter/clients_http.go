package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/utils"
	"github.com/MKhiriev/go-wallet-admin/models"
)

type httpClientsAdapter struct {
	client   *utils.HTTPClient
	observer RequestObserver
	logger   *logger.Logger
}

// NewHTTPClientsAdapter constructs the resty implementation of
// [ClientsAdapter] against adapterCfg.ClientsAPIAddress. When a service token
// is configured it is sent as a bearer token on every request. observer may be
// nil.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPClientsAdapter(adapterCfg config.Adapter, observer RequestObserver, logger *logger.Logger) (ClientsAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ClientsAPIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid clients api address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	if token := strings.TrimSpace(adapterCfg.ClientsAPIToken); token != "" {
		client.SetAuthToken(token)
	}

	if observer == nil {
		observer = nopObserver{}
	}

	return &httpClientsAdapter{client: client, observer: observer, logger: logger}, nil
}

// GetClients implements [ClientsAdapter] via GET /clients.
func (h *httpClientsAdapter) GetClients(ctx context.Context) (clients []models.Client, err error) {
	defer func() { h.observer.ObserveUpstream("get_clients", outcome(err)) }()

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&clients).
		Get("/clients")
	if err != nil {
		return nil, fmt.Errorf("get clients request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}

// GetClient implements [ClientsAdapter] via GET /clients/{id}.
func (h *httpClientsAdapter) GetClient(ctx context.Context, id string) (client models.Client, err error) {
	defer func() { h.observer.ObserveUpstream("get_client", outcome(err)) }()

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&client).
		Get("/clients/" + url.PathEscape(id))
	if err != nil {
		return models.Client{}, fmt.Errorf("get client request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Client{}, err
	}

	return client, nil
}

// DeleteClient implements [ClientsAdapter] via DELETE /clients/{id}.
func (h *httpClientsAdapter) DeleteClient(ctx context.Context, id string) (err error) {
	defer func() { h.observer.ObserveUpstream("delete_client", outcome(err)) }()

	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/clients/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete client request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetTransactions implements [ClientsAdapter] via
// GET /clients/{id}/transactions.
func (h *httpClientsAdapter) GetTransactions(ctx context.Context, id string) (transactions []models.Transaction, err error) {
	defer func() { h.observer.ObserveUpstream("get_transactions", outcome(err)) }()

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&transactions).
		Get("/clients/" + url.PathEscape(id) + "/transactions")
	if err != nil {
		return nil, fmt.Errorf("get transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

// RegisterClient implements [ClientsAdapter] via POST /api/auth/register.
func (h *httpClientsAdapter) RegisterClient(ctx context.Context, registration models.Registration) (err error) {
	defer func() { h.observer.ObserveUpstream("register_client", outcome(err)) }()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registration).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Ping implements [ClientsAdapter]. Any answer below 500 counts as alive.
func (h *httpClientsAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Head("/clients")
	if err != nil {
		return fmt.Errorf("ping clients api: %w", err)
	}
	if resp.StatusCode() >= 500 {
		return mapHTTPError(resp)
	}
	return nil
}
