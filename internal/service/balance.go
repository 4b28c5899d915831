package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/app"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/shopspring/decimal"
)

// btcDivisionPrecision is the number of decimal places kept when inverting
// the rate; well beyond the 8 places shown.
const btcDivisionPrecision = 24

// ConvertUSDToBTC converts usd at usdPerBTC dollars per bitcoin, computed as
// usd × (1 / usdPerBTC). Returns ErrInvalidRate when usdPerBTC is not
// positive.
func ConvertUSDToBTC(usd, usdPerBTC decimal.Decimal) (decimal.Decimal, error) {
	if !usdPerBTC.IsPositive() {
		return decimal.Zero, ErrInvalidRate
	}

	btcPerUSD := decimal.NewFromInt(1).DivRound(usdPerBTC, btcDivisionPrecision)
	return usd.Mul(btcPerUSD), nil
}

type balanceService struct {
	priceAdapter adapter.PriceAdapter
	recorder     MetricsRecorder
	logger       *logger.Logger
}

// NewBalanceService constructs a BalanceService over priceAdapter.
// recorder may be nil.
func NewBalanceService(priceAdapter adapter.PriceAdapter, recorder MetricsRecorder, logger *logger.Logger) BalanceService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &balanceService{
		priceAdapter: priceAdapter,
		recorder:     recorder,
		logger:       logger,
	}
}

func (s *balanceService) Card(ctx context.Context, usd decimal.Decimal, showBTC bool) models.BalanceCard {
	card := models.BalanceCard{USD: usd}
	if !showBTC {
		return card
	}

	log := logger.FromContext(ctx)

	rate, err := s.priceAdapter.GetBTCRate(ctx)
	if err == nil {
		var btc decimal.Decimal
		if btc, err = ConvertUSDToBTC(usd, rate); err == nil {
			card.BTC = &btc
			return card
		}
	}

	log.Err(err).Str("func", "*balanceService.Card").Msg("error fetching BTC rate")
	s.recorder.IncrementBTCRateFailures()
	card.BTCError = app.MsgFailedToFetchBTCRate
	return card
}
