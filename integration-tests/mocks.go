package integration_tests

import (
	"context"
	"fmt"
	"math"
	"projection/internal/domain"
	"projection/internal/repository"
	l1_service "projection/internal/service/l1"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

const TestSheetID = "test-sheet"

// annual growth of the synthetic series served in test mode
var testSymbolGrowth = map[string]float64{
	"SPY": 0.10,
	"BND": 0.04,
}

func NewMockPriceRepositoryForTests() repository.HistoricalPriceRepository {
	return mockPriceRepositoryForTestsHandler{}
}

type mockPriceRepositoryForTestsHandler struct{}

// ListClosingPrices serves a smooth weekday series that compounds at the
// symbol's fixed growth rate
func (m mockPriceRepositoryForTestsHandler) ListClosingPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	growth, ok := testSymbolGrowth[strings.ToUpper(symbol)]
	if !ok {
		return nil, fmt.Errorf("no test prices for %s", symbol)
	}

	prices := []domain.AssetPrice{}
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		years := date.Sub(start).Hours() / 24 / 365.25
		prices = append(prices, domain.AssetPrice{
			Symbol: symbol,
			Date:   date,
			Price:  100 * math.Pow(1+growth, years),
		})
	}
	return prices, nil
}

const testSheetCsv = `date,amount,kind
2024-01-01,"$25,000.00",once
2024-01-01,$500,monthly
2024-07-01,$750,monthly
2025-01-01,"$5,000",once
`

type sheetRow struct {
	Date   string `csv:"date"`
	Amount string `csv:"amount"`
	Kind   string `csv:"kind"`
}

func NewMockSheetsClientForTests() l1_service.SheetRowsClient {
	return mockSheetsClientForTestsHandler{}
}

type mockSheetsClientForTestsHandler struct{}

// GetRows returns the fixture sheet, header included, for TestSheetID
func (m mockSheetsClientForTestsHandler) GetRows(ctx context.Context, sheetID, cellRange string) ([][]string, error) {
	if sheetID != TestSheetID {
		return nil, fmt.Errorf("sheet %s not found", sheetID)
	}

	rows := []sheetRow{}
	if err := gocsv.UnmarshalString(testSheetCsv, &rows); err != nil {
		return nil, err
	}

	out := [][]string{{"date", "amount", "kind"}}
	for _, row := range rows {
		out = append(out, []string{row.Date, row.Amount, row.Kind})
	}
	return out, nil
}
