package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers all API routes. The two original endpoints (`/` and
// `/start-monitoring`) stay unauthenticated; the /api routes require a key
// and are rate limited per key.
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", api.rootHandler)
	mux.HandleFunc("GET /start-monitoring", api.startMonitoringHandler)
	mux.HandleFunc("GET /monitoring-status", api.monitoringStatusHandler)

	mux.Handle("GET /api/websites", api.limited(validateAPIKey(api, api.listWebsitesHandler)))
	mux.Handle("POST /api/websites", api.limited(validateAPIKey(api, api.createWebsiteHandler)))
	mux.Handle("GET /api/snapshots", api.limited(validateAPIKey(api, api.snapshotsHandler)))
}

func (api *RestAPI) limited(next http.Handler) http.Handler {
	if api.rateLimiter == nil {
		return next
	}
	return api.rateLimiter(next)
}
