package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomad99/lab007-scraper/internal/models"
)

func TestRootHandler(t *testing.T) {
	api, _ := createTestAPI(t)

	resp, response := serveAndDecode(t, api, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "lab007-scraper", entry["name"])
	assert.Equal(t, "test", entry["env"])

	monitoring, ok := entry["monitoring"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, models.RunStateIdle, monitoring["state"])
}

func TestUnknownPathReturns404(t *testing.T) {
	api, _ := createTestAPI(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	req, _ := http.NewRequest(http.MethodGet, "/definitely-not-a-route", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
