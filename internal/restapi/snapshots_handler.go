package restapi

import (
	"errors"
	"net/http"

	"github.com/thomad99/lab007-scraper/internal/models"
	"github.com/thomad99/lab007-scraper/internal/utils"
	"github.com/thomad99/lab007-scraper/monitordb"
)

const (
	defaultSnapshotLimit = 10
	maxSnapshotLimit     = 100
)

// snapshotsHandler returns the most recent stored scrapes for a URL.
func (api *RestAPI) snapshotsHandler(w http.ResponseWriter, r *http.Request) {
	url := utils.QueryParam(r, "url", "")
	if err := utils.ValidateWebsiteURL(url); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"url": {err.Error()},
		})
		return
	}

	limit := utils.QueryParamInt(r, "limit", defaultSnapshotLimit, 1, maxSnapshotLimit)

	if _, err := api.Queries.GetWebsite(r.Context(), url); err != nil {
		if errors.Is(err, monitordb.ErrNotFound) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	snapshots, err := api.Queries.RecentSnapshots(r.Context(), url, limit)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	list := make([]models.SnapshotSummary, 0, len(snapshots))
	for _, snapshot := range snapshots {
		list = append(list, models.NewSnapshotSummary(
			snapshot.ID, snapshot.URL, snapshot.ScrapedContent, snapshot.CreatedAt,
		))
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}
