package repository

import (
	"context"
	"fmt"
	"projection/internal/domain"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type yahooPriceRepositoryHandler struct{}

func NewYahooPriceRepository() HistoricalPriceRepository {
	return yahooPriceRepositoryHandler{}
}

func (h yahooPriceRepositoryHandler) ListClosingPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// chart end is exclusive
	chartEnd := end.AddDate(0, 0, 1)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&chartEnd),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	prices := []domain.AssetPrice{}
	for iter.Next() {
		bar := iter.Bar()
		prices = append(prices, domain.AssetPrice{
			Symbol: symbol,
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Price:  bar.AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return cleanPrices(prices, start, end), nil
}
