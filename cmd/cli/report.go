package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"projection/api"
	"projection/internal/domain"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type requestFile struct {
	api.SimulateRequest `yaml:",inline"`
}

// loadRequest reads a request in the same shape the http api accepts. yaml is
// a superset of json so one decoder covers both
func loadRequest(path string) (requestFile, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return requestFile{}, fmt.Errorf("failed to read request file: %w", err)
	}

	request := requestFile{}
	if err := yaml.Unmarshal(f, &request); err != nil {
		return requestFile{}, fmt.Errorf("failed to parse request file %s: %w", path, err)
	}
	return request, nil
}

func writeReport(w io.Writer, report domain.SimulationReport, format string) error {
	response, err := api.NewSimulateResponse(report)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	case "csv":
		csvBytes, err := response.MarshalCSV()
		if err != nil {
			return err
		}
		_, err = w.Write(csvBytes)
		return err
	case "table", "":
		return writeTable(w, *response)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// writeTable prints one row per year plus the final month
func writeTable(w io.Writer, response api.SimulateResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "start %s, %d paths over %d years\n", response.SimulationStartDate, response.Cycles, response.Years)
	fmt.Fprintln(tw, "month\tdate\tp10\tmedian\tmean\tp90\t")
	for _, row := range response.Rows() {
		if row.Month%12 != 0 && row.Month != len(response.Months)-1 {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t\n", row.Month, row.Date, row.P10, row.Median, row.Mean, row.P90)
	}
	return tw.Flush()
}
