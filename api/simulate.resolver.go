package api

import (
	"fmt"
	"math"
	"net/http"
	"projection/internal/domain"
	"projection/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

type DatedAmount struct {
	Date   string  `json:"date" yaml:"date"`
	Amount float64 `json:"amount" yaml:"amount"`
}

type SimulateRequest struct {
	Allocations     []domain.AssetAllocation `json:"allocations" yaml:"allocations"`
	OneTimeDeposits []DatedAmount            `json:"oneTimeDeposits" yaml:"oneTimeDeposits"`
	MonthlyChanges  []DatedAmount            `json:"monthlyChanges" yaml:"monthlyChanges"`
	Cycles          *int                     `json:"cycles" yaml:"cycles"`
	Years           *int                     `json:"years" yaml:"years"`
	StartDate       *string                  `json:"startDate" yaml:"startDate"`
	Seed            *uint64                  `json:"seed" yaml:"seed"`
}

type SimulateResponse struct {
	Months              []int    `json:"months"`
	Dates               []string `json:"dates"`
	Mean                []int64  `json:"mean"`
	Median              []int64  `json:"median"`
	P10                 []int64  `json:"p10"`
	P90                 []int64  `json:"p90"`
	SimulationStartDate string   `json:"simulationStartDate"`
	Cycles              int      `json:"cycles"`
	Years               int      `json:"years"`
}

type ReportRow struct {
	Month  int    `csv:"month"`
	Date   string `csv:"date"`
	Mean   int64  `csv:"mean"`
	Median int64  `csv:"median"`
	P10    int64  `csv:"p10"`
	P90    int64  `csv:"p90"`
}

func parseRequestDate(field, value string) (time.Time, error) {
	t, err := util.ParseDate(value)
	if err != nil {
		return time.Time{}, domain.NewInvalidInputError(fmt.Sprintf("%s: %s", field, err.Error()))
	}
	return t, nil
}

// ToInput fills in defaults and parses every date. a malformed date is
// rejected here, before any simulation work
func (r SimulateRequest) ToInput(cfg util.SimulationConfig) (domain.SimulationInput, error) {
	in := domain.SimulationInput{
		Allocations:     r.Allocations,
		OneTimeDeposits: []domain.Deposit{},
		MonthlyChanges:  []domain.MonthlyChange{},
		Cycles:          cfg.DefaultCycles,
		Years:           cfg.DefaultYears,
		Seed:            r.Seed,
	}
	if r.Cycles != nil {
		in.Cycles = *r.Cycles
	}
	if r.Years != nil {
		in.Years = *r.Years
	}

	for i, d := range r.OneTimeDeposits {
		date, err := parseRequestDate(fmt.Sprintf("oneTimeDeposits[%d].date", i), d.Date)
		if err != nil {
			return domain.SimulationInput{}, err
		}
		in.OneTimeDeposits = append(in.OneTimeDeposits, domain.Deposit{
			Date:   date,
			Amount: d.Amount,
		})
	}
	for i, d := range r.MonthlyChanges {
		date, err := parseRequestDate(fmt.Sprintf("monthlyChanges[%d].date", i), d.Date)
		if err != nil {
			return domain.SimulationInput{}, err
		}
		in.MonthlyChanges = append(in.MonthlyChanges, domain.MonthlyChange{
			Date:   date,
			Amount: d.Amount,
		})
	}

	if r.StartDate != nil && *r.StartDate != "" {
		date, err := parseRequestDate("startDate", *r.StartDate)
		if err != nil {
			return domain.SimulationInput{}, err
		}
		in.StartDate = &date
	}

	return in, nil
}

// roundStat rounds half away from zero. statistics are kept as floats
// everywhere else
func roundStat(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.InternalFailureError{Cause: fmt.Errorf("statistic is not finite: %f", v)}
	}
	return decimal.NewFromFloat(v).Round(0).IntPart(), nil
}

func NewSimulateResponse(report domain.SimulationReport) (*SimulateResponse, error) {
	n := len(report.Entries)
	out := &SimulateResponse{
		Months:              make([]int, 0, n),
		Dates:               make([]string, 0, n),
		Mean:                make([]int64, 0, n),
		Median:              make([]int64, 0, n),
		P10:                 make([]int64, 0, n),
		P90:                 make([]int64, 0, n),
		SimulationStartDate: util.FormatDate(report.StartDate),
		Cycles:              report.Cycles,
		Years:               report.Years,
	}

	for _, e := range report.Entries {
		stats := [4]int64{}
		for i, v := range []float64{e.Mean, e.Median, e.P10, e.P90} {
			rounded, err := roundStat(v)
			if err != nil {
				return nil, fmt.Errorf("month %d: %w", e.Month, err)
			}
			stats[i] = rounded
		}
		out.Months = append(out.Months, e.Month)
		out.Dates = append(out.Dates, util.FormatDate(e.Date))
		out.Mean = append(out.Mean, stats[0])
		out.Median = append(out.Median, stats[1])
		out.P10 = append(out.P10, stats[2])
		out.P90 = append(out.P90, stats[3])
	}

	return out, nil
}

func (r SimulateResponse) Rows() []ReportRow {
	rows := make([]ReportRow, 0, len(r.Months))
	for i := range r.Months {
		rows = append(rows, ReportRow{
			Month:  r.Months[i],
			Date:   r.Dates[i],
			Mean:   r.Mean[i],
			Median: r.Median[i],
			P10:    r.P10[i],
			P90:    r.P90[i],
		})
	}
	return rows
}

func (r SimulateResponse) MarshalCSV() ([]byte, error) {
	rows := r.Rows()
	return gocsv.MarshalBytes(&rows)
}

func (m ApiHandler) simulate(c *gin.Context) {
	var requestBody SimulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	in, err := requestBody.ToInput(m.SimulationConfig)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	report, err := m.SimulationService.Simulate(c.Request.Context(), in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := NewSimulateResponse(*report)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if c.Query("format") == "csv" {
		csvBytes, err := out.MarshalCSV()
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to encode csv: %w", err), c)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=projection-%s.csv", report.RunID))
		c.Data(200, "text/csv", csvBytes)
		return
	}

	c.JSON(200, out)
}
