package handler

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/blaisecz/fitbit-sleep/internal/config"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
	"github.com/google/uuid"
)

// dashboardRows is the number of table rows shown on the page.
const dashboardRows = 31

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #333; }
table { border-collapse: collapse; font-size: 12px; display: block; overflow-x: auto; }
th, td { border: 1px solid #ddd; padding: 2px 6px; text-align: right; white-space: nowrap; }
img { max-width: 100%; margin: 1em 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Dataset}}
<p>This is sleep data from {{.From}} to {{.To}}: {{.Dataset.Rows}} nights from {{len .Dataset.Sources}} export files, {{.Dataset.Excluded}} naps excluded.</p>
<table>
<tr><th>dateOfSleep</th>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr><td>{{.Date}}</td>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
{{if .More}}<p><a href="{{.RowsURL}}">All rows</a></p>{{end}}
<img src="{{.LineURL}}" alt="Sleep plot">
<img src="{{.ScatterURL}}" alt="Sleep scatter plot">
<img src="{{.HeatmapURL}}" alt="Correlation Matrix">
<p><a href="{{.ExportURL}}">Download spreadsheet</a></p>
{{else}}
<p>No dataset loaded. Upload Fitbit sleep exports with POST /v1/datasets.</p>
{{end}}
</body>
</html>
`))

type dashboardRow struct {
	Date  string
	Cells []string
}

type dashboardPage struct {
	Title      string
	Dataset    *domain.DatasetResponse
	From, To   string
	Columns    []string
	Rows       []dashboardRow
	More       bool
	RowsURL    string
	LineURL    string
	ScatterURL string
	HeatmapURL string
	ExportURL  string
}

// DashboardHandler serves the HTML overview of a dataset.
type DashboardHandler struct {
	datasets service.DatasetService
	preset   *config.Dashboard
}

func NewDashboardHandler(datasets service.DatasetService, preset *config.Dashboard) *DashboardHandler {
	return &DashboardHandler{datasets: datasets, preset: preset}
}

// Show handles GET /
// The dataset is chosen with ?dataset=<id>; by default the newest one is shown.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	page := dashboardPage{Title: h.preset.Title}

	dataset, err := h.pick(r)
	if err != nil {
		writeError(w, err, "Failed to load dashboard")
		return
	}

	if dataset != nil {
		resp := dataset.ToResponse()
		rows, err := h.datasets.Rows(r.Context(), dataset.ID, domain.RowFilter{Limit: dashboardRows})
		if err != nil {
			writeError(w, err, "Failed to load dashboard")
			return
		}

		base := "/v1/datasets/" + dataset.ID.String()
		page.Dataset = &resp
		page.From = resp.From.Format(domain.DateLayout)
		page.To = resp.To.Format(domain.DateLayout)
		page.Columns = rows.Columns
		page.More = rows.Pagination.HasMore
		page.RowsURL = base + "/rows"
		page.ExportURL = base + "/export.xlsx"
		page.LineURL = base + "/charts/line.png?" + url.Values{
			"columns": {strings.Join(h.preset.LineColumns, ",")},
			"weekday": {h.preset.Weekday},
		}.Encode()
		page.ScatterURL = base + "/charts/scatter.png?" + url.Values{
			"x": {h.preset.Scatter.X},
			"y": {h.preset.Scatter.Y},
		}.Encode()
		page.HeatmapURL = base + "/charts/correlation.png"
		if len(h.preset.CorrelationLabels) > 0 {
			page.HeatmapURL += "?" + url.Values{"labels": {strings.Join(h.preset.CorrelationLabels, ",")}}.Encode()
		}

		for _, row := range rows.Data {
			cells := make([]string, len(rows.Columns))
			for i, c := range rows.Columns {
				cells[i] = formatCell(row.Values[c])
			}
			page.Rows = append(page.Rows, dashboardRow{Date: row.Date, Cells: cells})
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, page); err != nil {
		problem.InternalError("Failed to render dashboard").Write(w)
	}
}

func (h *DashboardHandler) pick(r *http.Request) (*domain.Dataset, error) {
	if raw := r.URL.Query().Get("dataset"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		return h.datasets.Get(r.Context(), id)
	}

	datasets, err := h.datasets.List(r.Context())
	if err != nil || len(datasets) == 0 {
		return nil, err
	}
	return datasets[0], nil
}
