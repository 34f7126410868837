package restapi

import (
	"net/http"

	"github.com/thomad99/lab007-scraper/internal/models"
)

// rootHandler reports that the service is up, along with the state of the
// current or last monitoring run.
func (api *RestAPI) rootHandler(w http.ResponseWriter, r *http.Request) {
	entry := map[string]interface{}{
		"name":       "lab007-scraper",
		"env":        api.Config.Env.String(),
		"monitoring": api.Monitor.Status(),
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
