package api

import (
	"fmt"
	"net/http"
	"projection/internal/util"

	"github.com/gin-gonic/gin"
)

type importDepositsRequest struct {
	SheetID string `json:"sheetId"`
	Range   string `json:"range"`
}

// shaped like the simulate request so clients can pass it straight through
type importDepositsResponse struct {
	OneTimeDeposits []DatedAmount `json:"oneTimeDeposits"`
	MonthlyChanges  []DatedAmount `json:"monthlyChanges"`
}

func (m ApiHandler) importDeposits(c *gin.Context) {
	var requestBody importDepositsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	imported, err := m.DepositImportService.ImportDeposits(c.Request.Context(), requestBody.SheetID, requestBody.Range)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := importDepositsResponse{
		OneTimeDeposits: []DatedAmount{},
		MonthlyChanges:  []DatedAmount{},
	}
	for _, d := range imported.OneTimeDeposits {
		out.OneTimeDeposits = append(out.OneTimeDeposits, DatedAmount{
			Date:   util.FormatDate(d.Date),
			Amount: d.Amount,
		})
	}
	for _, d := range imported.MonthlyChanges {
		out.MonthlyChanges = append(out.MonthlyChanges, DatedAmount{
			Date:   util.FormatDate(d.Date),
			Amount: d.Amount,
		})
	}

	c.JSON(200, out)
}
