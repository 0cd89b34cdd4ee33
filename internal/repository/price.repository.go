package repository

//go:generate mockgen -source=price.repository.go -destination=mocks/mock_price.repository.go

import (
	"context"
	"fmt"
	"projection/internal/domain"
	"projection/internal/util"
	"sort"
	"strings"
	"time"
)

// HistoricalPriceRepository fetches daily closing prices from a market data
// provider. results are ascending by date and nothing is stored
type HistoricalPriceRepository interface {
	ListClosingPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
}

func NewHistoricalPriceRepository(cfg util.Config) (HistoricalPriceRepository, error) {
	switch strings.ToLower(cfg.PriceProvider) {
	case "", "yahoo":
		return NewYahooPriceRepository(), nil
	case "alpaca":
		if cfg.Alpaca.ApiKey == "" || cfg.Alpaca.ApiSecret == "" {
			return nil, fmt.Errorf("alpaca price provider requires ALPACA_API_KEY and ALPACA_API_SECRET")
		}
		return NewAlpacaPriceRepository(cfg.Alpaca.ApiKey, cfg.Alpaca.ApiSecret, cfg.Alpaca.Endpoint), nil
	}
	return nil, fmt.Errorf("unknown price provider %q", cfg.PriceProvider)
}

// cleanPrices drops non-positive prices and anything outside [start, end],
// then sorts ascending
func cleanPrices(prices []domain.AssetPrice, start, end time.Time) []domain.AssetPrice {
	out := []domain.AssetPrice{}
	for _, p := range prices {
		if p.Price <= 0 {
			continue
		}
		if p.Date.Before(start) || !util.DateLte(p.Date, end) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
