package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/thomad99/lab007-scraper/internal/app"
	"github.com/thomad99/lab007-scraper/internal/logging"
	"github.com/thomad99/lab007-scraper/internal/models"
	"github.com/thomad99/lab007-scraper/monitordb"
)

//go:embed status_page.html debug_index.html
var templateFS embed.FS

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

type statusPageData struct {
	Title    string
	Status   models.RunStatus
	Websites []monitordb.Website
}

func (webUI *WebUI) statusPageHandler(w http.ResponseWriter, r *http.Request) {
	websites, err := webUI.Queries.ListWebsites(r.Context())
	if err != nil {
		logging.LogError(webUI.Logger, "failed to list websites for status page", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "status_page.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := statusPageData{
		Title:    "Website Monitor Status",
		Status:   webUI.Monitor.Status(),
		Websites: websites,
	}

	if err := tmpl.Execute(w, data); err != nil {
		logging.LogError(webUI.Logger, "failed to render status page", err)
	}
}
