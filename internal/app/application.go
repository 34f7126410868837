package app

import (
	"log/slog"
	"net/http"

	"github.com/thomad99/lab007-scraper/internal/appconf"
	"github.com/thomad99/lab007-scraper/internal/monitor"
	"github.com/thomad99/lab007-scraper/monitordb"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Queries *monitordb.Queries
	Monitor *monitor.Manager
}

// RequestHasInvalidAPIKey reports whether the request lacks a valid API key.
// The key is read from the `key` query parameter.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return !app.Config.APIKeyValid(r.URL.Query().Get("key"))
}
