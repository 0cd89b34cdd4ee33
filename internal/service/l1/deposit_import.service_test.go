package l1_service

import (
	"context"
	"errors"
	"projection/internal/domain"
	mock_l1_service "projection/internal/service/l1/mocks"
	"projection/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseDepositRows(t *testing.T) {
	t.Run("one-time and monthly rows", func(t *testing.T) {
		out, err := ParseDepositRows([][]string{
			{"date", "amount", "kind"},
			{"2024-01-15", "$10,000.50", "once"},
			{"2024-02-01", "500", "Monthly"},
			{},
			{"3/1/2024", "(250)"},
			{"2024-06-01", "750", "monthly"},
		})
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				&DepositImport{
					OneTimeDeposits: []domain.Deposit{
						{Date: util.NewDate(2024, 1, 15), Amount: 10000.50},
						{Date: util.NewDate(2024, 3, 1), Amount: -250},
					},
					MonthlyChanges: []domain.MonthlyChange{
						{Date: util.NewDate(2024, 2, 1), Amount: 500},
						{Date: util.NewDate(2024, 6, 1), Amount: 750},
					},
				},
				out,
			),
		)
	})

	t.Run("rejects bad amount with row number", func(t *testing.T) {
		_, err := ParseDepositRows([][]string{
			{"2024-01-15", "100"},
			{"2024-02-15", "ten dollars"},
		})
		require.True(t, domain.IsInvalidInput(err))
		require.ErrorContains(t, err, "row 2")
	})

	t.Run("only the first row may be a header", func(t *testing.T) {
		_, err := ParseDepositRows([][]string{
			{"2024-01-15", "100"},
			{"total", "100"},
		})
		require.True(t, domain.IsInvalidInput(err))
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := ParseDepositRows([][]string{
			{"2024-01-15", "100", "weekly"},
		})
		require.True(t, domain.IsInvalidInput(err))
	})

	t.Run("missing amount", func(t *testing.T) {
		_, err := ParseDepositRows([][]string{
			{"2024-01-15"},
		})
		require.ErrorContains(t, err, "missing amount")
	})
}

func TestDepositImportService_ImportDeposits(t *testing.T) {
	ctrl := gomock.NewController(t)
	sheetsClient := mock_l1_service.NewMockSheetRowsClient(ctrl)
	service := NewDepositImportService(sheetsClient)

	t.Run("reads rows from the sheet", func(t *testing.T) {
		sheetsClient.EXPECT().
			GetRows(gomock.Any(), "sheet-1", "A1:C10").
			Return([][]string{{"2024-01-01", "1000"}}, nil)

		out, err := service.ImportDeposits(context.Background(), "sheet-1", "A1:C10")
		require.NoError(t, err)
		require.Len(t, out.OneTimeDeposits, 1)
		require.Empty(t, out.MonthlyChanges)
	})

	t.Run("client failure is an upstream error", func(t *testing.T) {
		sheetsClient.EXPECT().
			GetRows(gomock.Any(), "sheet-1", "A1:C10").
			Return(nil, errors.New("403"))

		_, err := service.ImportDeposits(context.Background(), "sheet-1", "A1:C10")
		require.ErrorAs(t, err, &domain.UpstreamError{})
	})

	t.Run("requires sheet id", func(t *testing.T) {
		_, err := service.ImportDeposits(context.Background(), "", "A1:C10")
		require.True(t, domain.IsInvalidInput(err))
	})
}
