package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClient_GetRows(t *testing.T) {
	t.Run("parses values", func(t *testing.T) {
		var gotPath, gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.URL.Query().Get("key")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"range": "Deposits!A1:C3",
				"majorDimension": "ROWS",
				"values": [
					["date", "amount", "kind"],
					["2024-01-01", "$1,000.00", "once"],
					["2024-02-01", 500]
				]
			}`))
		}))
		defer server.Close()

		client := Client{
			HttpClient: server.Client(),
			ApiKey:     "abc",
			BaseURL:    server.URL,
		}
		rows, err := client.GetRows(context.Background(), "sheet-1", "Deposits!A1:C3")
		require.NoError(t, err)

		require.Equal(t, "/sheet-1/values/Deposits!A1:C3", gotPath)
		require.Equal(t, "abc", gotKey)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[][]string{
					{"date", "amount", "kind"},
					{"2024-01-01", "$1,000.00", "once"},
					{"2024-02-01", "500"},
				},
				rows,
			),
		)
	})

	t.Run("surfaces api error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error": {"code": 403, "message": "The caller does not have permission", "status": "PERMISSION_DENIED"}}`))
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), BaseURL: server.URL}
		_, err := client.GetRows(context.Background(), "sheet-1", "A1:C3")
		require.ErrorContains(t, err, "403")
		require.ErrorContains(t, err, "does not have permission")
	})

	t.Run("requires sheet id", func(t *testing.T) {
		_, err := NewClient("abc").GetRows(context.Background(), "", "A1:C3")
		require.Error(t, err)
	})
}
