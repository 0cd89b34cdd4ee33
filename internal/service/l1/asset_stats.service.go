package l1_service

import (
	"context"
	"fmt"
	"math"
	"projection/internal/domain"
	"projection/internal/repository"
	"time"

	"github.com/montanaflynn/stats"
)

const tradingDaysPerYear = 252

// AssetStatsService estimates the cagr and volatility inputs of an
// allocation from an asset's price history
type AssetStatsService interface {
	GetAssetStats(ctx context.Context, symbol string, start, end time.Time) (*domain.AssetStats, error)
}

type assetStatsServiceHandler struct {
	PriceRepository repository.HistoricalPriceRepository
}

func NewAssetStatsService(priceRepository repository.HistoricalPriceRepository) AssetStatsService {
	return assetStatsServiceHandler{
		PriceRepository: priceRepository,
	}
}

func (h assetStatsServiceHandler) GetAssetStats(ctx context.Context, symbol string, start, end time.Time) (*domain.AssetStats, error) {
	if symbol == "" {
		return nil, domain.NewInvalidInputError("symbol is required")
	}
	if !start.Before(end) {
		return nil, domain.NewInvalidInputError("start must be before end")
	}

	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	_, endSpan := profile.StartNewSpan("list closing prices")
	prices, err := h.PriceRepository.ListClosingPrices(ctx, symbol, start, end)
	endSpan()
	if err != nil {
		return nil, domain.UpstreamError{
			Source: "price provider",
			Cause:  fmt.Errorf("failed to list prices for %s: %w", symbol, err),
		}
	}
	return ComputeAssetStats(symbol, prices)
}

// ComputeAssetStats annualizes daily simple returns. prices must be ascending
// by date
func ComputeAssetStats(symbol string, prices []domain.AssetPrice) (*domain.AssetStats, error) {
	if len(prices) < 3 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("need at least 3 prices for %s, got %d", symbol, len(prices)))
	}
	first := prices[0]
	last := prices[len(prices)-1]
	if first.Price <= 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("first price for %s must be positive", symbol))
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1].Price
		if prev <= 0 {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("non-positive price for %s on %s", symbol, prices[i-1].Date.Format(time.DateOnly)))
		}
		returns = append(returns, prices[i].Price/prev-1)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stdev for %s: %w", symbol, err)
	}

	years := last.Date.Sub(first.Date).Hours() / 24 / 365.25
	if years <= 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("prices for %s span no time", symbol))
	}
	cagr := math.Pow(last.Price/first.Price, 1/years) - 1

	return &domain.AssetStats{
		Symbol:     symbol,
		Cagr:       cagr,
		Volatility: stdev * math.Sqrt(tradingDaysPerYear),
		Start:      first.Date,
		End:        last.Date,
		NumPrices:  len(prices),
	}, nil
}
