package restapi

import (
	"errors"
	"net/http"

	"github.com/thomad99/lab007-scraper/internal/models"
	"github.com/thomad99/lab007-scraper/internal/monitor"
)

// startMonitoringHandler kicks off a monitoring run in the background and
// returns immediately. Only one run may be active at a time.
func (api *RestAPI) startMonitoringHandler(w http.ResponseWriter, r *http.Request) {
	status, err := api.Monitor.StartRun(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, monitor.ErrRunInProgress):
			response := models.NewResponse(http.StatusConflict,
				map[string]interface{}{"entry": status},
				"a monitoring run is already in progress")
			api.sendResponse(w, r, response)
		case errors.Is(err, monitor.ErrNoWebsites):
			response := models.NewResponse(http.StatusBadRequest, nil,
				"no websites registered for monitoring")
			api.sendResponse(w, r, response)
		default:
			api.serverErrorResponse(w, r, err)
		}
		return
	}

	response := models.NewResponse(http.StatusOK,
		map[string]interface{}{"entry": status},
		"monitoring started")
	api.sendResponse(w, r, response)
}

// monitoringStatusHandler reports the current or most recent run.
func (api *RestAPI) monitoringStatusHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(api.Monitor.Status()))
}
