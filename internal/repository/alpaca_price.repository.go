package repository

import (
	"context"
	"fmt"
	"projection/internal/domain"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

type alpacaPriceRepositoryHandler struct {
	MdClient *marketdata.Client
}

func NewAlpacaPriceRepository(apiKey, apiSecret, endpoint string) HistoricalPriceRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaPriceRepositoryHandler{
		MdClient: mdClient,
	}
}

func (h alpacaPriceRepositoryHandler) ListClosingPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.All,
		Start:      start,
		End:        end.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, err)
	}

	return cleanPrices(barsToPrices(symbol, bars), start, end), nil
}

func barsToPrices(symbol string, bars []marketdata.Bar) []domain.AssetPrice {
	out := make([]domain.AssetPrice, 0, len(bars))
	for _, bar := range bars {
		y, m, d := bar.Timestamp.UTC().Date()
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Date:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			Price:  bar.Close,
		})
	}
	return out
}
