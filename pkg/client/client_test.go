package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("GET /api/departments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 2, "name": "Marketing", "status": "Active"},
			{"id": 1, "name": "Engineering", "status": "Active"},
		})
	})
	mux.HandleFunc("GET /api/departments/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "name": "Engineering"})
	})
	mux.HandleFunc("GET /api/departments/99", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Not found"})
	})
	mux.HandleFunc("POST /api/departments", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		body["id"] = 3
		body["status"] = "Active"
		writeJSON(w, http.StatusCreated, body)
	})
	mux.HandleFunc("DELETE /api/departments/2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Deleted successfully",
			"deleted": map[string]any{"id": 2, "name": "Marketing"},
		})
	})
	mux.HandleFunc("GET /api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"employees": 12, "departments": 6, "products": 10,
			"orders": 6, "revenue": 16349.17, "invoices": 6,
			"unpaidInvoices": 3,
			"recentOrders":   []map[string]any{{"id": 6, "customer": "CloudNine Org"}},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestListAndGet(t *testing.T) {
	c := New(newTestServer(t).URL)
	ctx := context.Background()

	records, err := c.Departments().List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Marketing", records[0]["name"])

	record, err := c.Departments().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Engineering", record["name"])
}

func TestCreateEchoesServerAssignedFields(t *testing.T) {
	c := New(newTestServer(t).URL)

	record, err := c.Departments().Create(context.Background(), Record{
		"name": "R&D", "manager": "Tess",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, record["id"])
	assert.Equal(t, "Active", record["status"])
	assert.Equal(t, "R&D", record["name"])
}

func TestDeleteResult(t *testing.T) {
	c := New(newTestServer(t).URL)

	result, err := c.Departments().Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Deleted successfully", result.Message)
	assert.Equal(t, "Marketing", result.Deleted["name"])
}

func TestNotFoundBecomesAPIError(t *testing.T) {
	c := New(newTestServer(t).URL)

	_, err := c.Departments().Get(context.Background(), 99)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not found", apiErr.Message)
}

func TestMalformedErrorBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	t.Cleanup(server.Close)

	c := New(server.URL)
	_, err := c.Orders().List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Request failed", apiErr.Message)
}

func TestDashboard(t *testing.T) {
	c := New(newTestServer(t).URL)

	snap, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 12, snap.Employees)
	assert.EqualValues(t, 3, snap.UnpaidInvoices)
	assert.InDelta(t, 16349.17, snap.Revenue, 0.001)
	require.Len(t, snap.RecentOrders, 1)
	assert.Equal(t, "CloudNine Org", snap.RecentOrders[0]["customer"])
}
