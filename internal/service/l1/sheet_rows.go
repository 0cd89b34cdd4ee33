package l1_service

//go:generate mockgen -source=sheet_rows.go -destination=mocks/mock_sheet_rows.go

import "context"

// SheetRowsClient is the part of the spreadsheet client deposit import needs
type SheetRowsClient interface {
	GetRows(ctx context.Context, sheetID, cellRange string) ([][]string, error)
}
