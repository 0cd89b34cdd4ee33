package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Client reads cell values from the google sheets v4 values endpoint. only
// public or link-shared sheets are readable with an api key
type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: 15 * time.Second},
		ApiKey:     apiKey,
		BaseURL:    DefaultBaseURL,
	}
}

type valueRange struct {
	Range          string          `json:"range"`
	MajorDimension string          `json:"majorDimension"`
	Values         [][]interface{} `json:"values"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GetRows returns the formatted cell values in cellRange, row by row. trailing
// empty cells are omitted by the api so rows can be ragged
func (c Client) GetRows(ctx context.Context, sheetID, cellRange string) ([][]string, error) {
	if sheetID == "" {
		return nil, fmt.Errorf("sheet id is required")
	}
	if cellRange == "" {
		return nil, fmt.Errorf("cell range is required")
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	params := url.Values{}
	params.Set("key", c.ApiKey)
	params.Set("majorDimension", "ROWS")
	params.Set("valueRenderOption", "FORMATTED_VALUE")
	endpoint := fmt.Sprintf(
		"%s/%s/values/%s?%s",
		strings.TrimRight(baseURL, "/"),
		url.PathEscape(sheetID),
		url.PathEscape(cellRange),
		params.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet values: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		errResponse := errorResponse{}
		if json.Unmarshal(responseBytes, &errResponse) == nil && errResponse.Error.Message != "" {
			return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errResponse.Error.Message)
		}
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseJson := valueRange{}
	if err := json.Unmarshal(responseBytes, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to parse sheet values: %w", err)
	}

	rows := make([][]string, 0, len(responseJson.Values))
	for _, row := range responseJson.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, strings.TrimSpace(fmt.Sprint(cell)))
		}
		rows = append(rows, cells)
	}

	return rows, nil
}
