package l1_service

import (
	"context"
	"fmt"
	"projection/internal/domain"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DepositImport struct {
	OneTimeDeposits []domain.Deposit
	MonthlyChanges  []domain.MonthlyChange
}

type DepositImportService interface {
	ImportDeposits(ctx context.Context, sheetID, cellRange string) (*DepositImport, error)
}

type depositImportServiceHandler struct {
	SheetsClient SheetRowsClient
}

func NewDepositImportService(sheetsClient SheetRowsClient) DepositImportService {
	return depositImportServiceHandler{
		SheetsClient: sheetsClient,
	}
}

func (h depositImportServiceHandler) ImportDeposits(ctx context.Context, sheetID, cellRange string) (*DepositImport, error) {
	if sheetID == "" {
		return nil, domain.NewInvalidInputError("sheetId is required")
	}
	if cellRange == "" {
		return nil, domain.NewInvalidInputError("range is required")
	}

	rows, err := h.SheetsClient.GetRows(ctx, sheetID, cellRange)
	if err != nil {
		return nil, domain.UpstreamError{
			Source: "spreadsheet",
			Cause:  err,
		}
	}

	return ParseDepositRows(rows)
}

var sheetDateLayouts = []string{
	time.DateOnly,
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
}

func parseSheetDate(s string) (time.Time, bool) {
	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseSheetAmount(s string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	// accounting style negatives, e.g. (500.00)
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// ParseDepositRows reads rows of (date, amount, kind). kind is "once" when
// blank. a first row that does not start with a date is treated as a header
func ParseDepositRows(rows [][]string) (*DepositImport, error) {
	out := &DepositImport{
		OneTimeDeposits: []domain.Deposit{},
		MonthlyChanges:  []domain.MonthlyChange{},
	}

	for i, row := range rows {
		rowNumber := i + 1
		if isBlankRow(row) {
			continue
		}

		date, ok := parseSheetDate(row[0])
		if !ok {
			if i == 0 {
				continue
			}
			return nil, domain.NewInvalidInputError(fmt.Sprintf("row %d: invalid date %q", rowNumber, row[0]))
		}

		if len(row) < 2 || row[1] == "" {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("row %d: missing amount", rowNumber))
		}
		amount, err := parseSheetAmount(row[1])
		if err != nil {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("row %d: invalid amount %q", rowNumber, row[1]))
		}

		kind := ""
		if len(row) > 2 {
			kind = strings.ToLower(row[2])
		}
		switch kind {
		case "", "once", "one-time", "onetime":
			out.OneTimeDeposits = append(out.OneTimeDeposits, domain.Deposit{
				Date:   date,
				Amount: amount,
			})
		case "monthly":
			out.MonthlyChanges = append(out.MonthlyChanges, domain.MonthlyChange{
				Date:   date,
				Amount: amount,
			})
		default:
			return nil, domain.NewInvalidInputError(fmt.Sprintf("row %d: unknown kind %q, expected once or monthly", rowNumber, row[2]))
		}
	}

	return out, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
