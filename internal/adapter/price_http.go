package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/utils"
	"github.com/shopspring/decimal"
)

const simplePricePath = "/api/v3/simple/price"

// simplePriceResponse is the body of GET /api/v3/simple/price?ids=bitcoin&vs_currencies=usd,
// e.g. {"bitcoin":{"usd":50000}}.
type simplePriceResponse struct {
	Bitcoin struct {
		USD decimal.NullDecimal `json:"usd"`
	} `json:"bitcoin"`
}

type httpPriceAdapter struct {
	client   *utils.HTTPClient
	observer RequestObserver
	logger   *logger.Logger
}

// NewHTTPPriceAdapter constructs the resty implementation of [PriceAdapter]
// against adapterCfg.PriceAPIAddress. observer may be nil.
func NewHTTPPriceAdapter(adapterCfg config.Adapter, observer RequestObserver, logger *logger.Logger) (PriceAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.PriceAPIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid price api address: %w", err)
	}

	if observer == nil {
		observer = nopObserver{}
	}

	return &httpPriceAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		observer: observer,
		logger:   logger,
	}, nil
}

// GetBTCRate implements [PriceAdapter]. A missing or non-positive price is
// reported as [ErrMalformedRate].
func (h *httpPriceAdapter) GetBTCRate(ctx context.Context) (rate decimal.Decimal, err error) {
	defer func() { h.observer.ObserveUpstream("get_btc_rate", outcome(err)) }()

	var body simplePriceResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":           "bitcoin",
			"vs_currencies": "usd",
		}).
		SetResult(&body).
		Get(simplePricePath)
	if err != nil {
		return decimal.Zero, fmt.Errorf("btc rate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return decimal.Zero, err
	}

	if !body.Bitcoin.USD.Valid || !body.Bitcoin.USD.Decimal.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMalformedRate, resp.String())
	}

	return body.Bitcoin.USD.Decimal, nil
}

// Ping implements [PriceAdapter] via GET /api/v3/ping.
func (h *httpPriceAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/v3/ping")
	if err != nil {
		return fmt.Errorf("ping price api: %w", err)
	}
	return mapHTTPError(resp)
}
