package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/thomad99/lab007-scraper/internal/alert"
	"github.com/thomad99/lab007-scraper/internal/app"
	"github.com/thomad99/lab007-scraper/internal/appconf"
	"github.com/thomad99/lab007-scraper/internal/logging"
	"github.com/thomad99/lab007-scraper/internal/models"
	"github.com/thomad99/lab007-scraper/internal/monitor"
	"github.com/thomad99/lab007-scraper/monitordb"
)

// staticScraper returns fixed content for every URL so handler tests never
// touch the network.
type staticScraper struct {
	content string
}

func (s staticScraper) Scrape(ctx context.Context, url string) (string, error) {
	return s.content, nil
}

// createTestAPI creates a RestAPI instance backed by a pgxmock pool and a
// monitor manager that scrapes canned content.
func createTestAPI(t *testing.T) (*RestAPI, pgxmock.PgxPoolIface) {
	t.Helper()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	mockPool.MatchExpectationsInOrder(false)

	queries := monitordb.New(mockPool)
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)

	manager := monitor.NewManager(monitor.Config{
		Cycles:        2,
		Interval:      time.Hour,
		ScrapeTimeout: time.Second,
	}, queries, staticScraper{content: "canned content"}, alert.NoopNotifier{}, logger)

	t.Cleanup(mockPool.Close)
	t.Cleanup(manager.Shutdown)

	testApp := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			APIKeys:   []string{"TEST"},
			RateLimit: 1000,
		},
		Logger:  logger,
		Queries: queries,
		Monitor: manager,
	}

	return NewRestAPI(testApp), mockPool
}

// serveAndDecode sets up a test server, performs the request, and decodes the
// response envelope.
func serveAndDecode(t *testing.T, api *RestAPI, method, endpoint string, body io.Reader) (*http.Response, models.ResponseModel) {
	t.Helper()

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	req, err := http.NewRequest(method, server.URL+endpoint, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func expectEmptyWebsites(mockPool pgxmock.PgxPoolIface) {
	rows := mockPool.NewRows([]string{"url", "email", "phone"})
	mockPool.ExpectQuery("SELECT url, email, phone FROM websites ORDER BY url").
		WillReturnRows(rows)
}

func expectWebsites(mockPool pgxmock.PgxPoolIface, sites ...monitordb.Website) {
	rows := mockPool.NewRows([]string{"url", "email", "phone"})
	for _, site := range sites {
		rows.AddRow(site.URL, site.Email, site.Phone)
	}
	mockPool.ExpectQuery("SELECT url, email, phone FROM websites ORDER BY url").
		WillReturnRows(rows)
}
