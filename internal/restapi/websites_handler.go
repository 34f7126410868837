package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/thomad99/lab007-scraper/internal/models"
	"github.com/thomad99/lab007-scraper/internal/utils"
	"github.com/thomad99/lab007-scraper/monitordb"
)

// listWebsitesHandler returns every registered website.
func (api *RestAPI) listWebsitesHandler(w http.ResponseWriter, r *http.Request) {
	websites, err := api.Queries.ListWebsites(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	list := make([]models.Website, 0, len(websites))
	for _, site := range websites {
		list = append(list, models.NewWebsite(site.URL, site.Email, site.Phone))
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}

// createWebsiteHandler registers a new website for monitoring.
func (api *RestAPI) createWebsiteHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		URL   string `json:"url"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"request body must be valid JSON"},
		})
		return
	}

	fieldErrors := map[string][]string{}
	if err := utils.ValidateWebsiteURL(input.URL); err != nil {
		fieldErrors["url"] = append(fieldErrors["url"], err.Error())
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		fieldErrors["email"] = append(fieldErrors["email"], err.Error())
	}
	if err := utils.ValidatePhone(input.Phone); err != nil {
		fieldErrors["phone"] = append(fieldErrors["phone"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	website := monitordb.Website{URL: input.URL, Email: input.Email, Phone: input.Phone}
	if err := api.Queries.AddWebsite(r.Context(), website); err != nil {
		if errors.Is(err, monitordb.ErrDuplicateWebsite) {
			response := models.NewResponse(http.StatusConflict, nil, "website already registered")
			api.sendResponse(w, r, response)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.NewWebsite(website.URL, website.Email, website.Phone)
	response := models.NewResponse(http.StatusCreated,
		map[string]interface{}{"entry": entry},
		"website registered")
	api.sendResponse(w, r, response)
}
