package api

import (
	"fmt"
	"net/http"
	"projection/internal/util"

	"github.com/gin-gonic/gin"
)

type assetStatsRequest struct {
	Symbol string `json:"symbol"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type assetStatsResponse struct {
	Symbol     string  `json:"symbol"`
	Cagr       float64 `json:"cagr"`
	Volatility float64 `json:"volatility"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	NumPrices  int     `json:"numPrices"`
}

func (m ApiHandler) assetStats(c *gin.Context) {
	var requestBody assetStatsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	start, err := parseRequestDate("start", requestBody.Start)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	end, err := parseRequestDate("end", requestBody.End)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	stats, err := m.AssetStatsService.GetAssetStats(c.Request.Context(), requestBody.Symbol, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, assetStatsResponse{
		Symbol:     stats.Symbol,
		Cagr:       stats.Cagr,
		Volatility: stats.Volatility,
		Start:      util.FormatDate(stats.Start),
		End:        util.FormatDate(stats.End),
		NumPrices:  stats.NumPrices,
	})
}
