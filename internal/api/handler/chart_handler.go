package handler

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/blaisecz/fitbit-sleep/internal/api/validation"
	"github.com/blaisecz/fitbit-sleep/internal/chart"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/export"
	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
	"github.com/go-chi/render"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ChartHandler struct {
	service service.ChartService
}

func NewChartHandler(service service.ChartService) *ChartHandler {
	return &ChartHandler{service: service}
}

// Line handles GET /v1/datasets/{datasetId}/charts/line.png
// @Summary Time-series chart
// @Description Plot columns against the sleep date with a vertical line on every reference weekday.
// @Tags charts
// @Produce png
// @Param datasetId path string true "Dataset UUID" format(uuid)
// @Param columns query string true "Comma-separated column names" example(rem.%,deep.%)
// @Param weekday query string false "Reference weekday of the markers" default(Monday)
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} problem.Problem "Invalid dataset ID"
// @Failure 404 {object} problem.Problem "Dataset not found"
// @Failure 422 {object} problem.Problem "Invalid or unknown columns"
// @Router /datasets/{datasetId}/charts/line.png [get]
func (h *ChartHandler) Line(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	req := domain.LineChartRequest{
		Columns: splitParam(r.URL.Query().Get("columns")),
		Weekday: r.URL.Query().Get("weekday"),
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	png, err := h.service.Line(r.Context(), id, req)
	if err != nil {
		writeError(w, err, "Failed to render chart")
		return
	}
	writePNG(w, chart.LineFilename(req.Columns), png)
}

// Scatter handles GET /v1/datasets/{datasetId}/charts/scatter.png
// @Summary Scatter chart
// @Description Plot one column against another, one point per night.
// @Tags charts
// @Produce png
// @Param datasetId path string true "Dataset UUID" format(uuid)
// @Param x query string true "Column on the x axis" example(startMin)
// @Param y query string true "Column on the y axis" example(deep.%)
// @Success 200 {file} binary "PNG image"
// @Failure 404 {object} problem.Problem "Dataset not found"
// @Failure 422 {object} problem.Problem "Invalid or unknown columns"
// @Router /datasets/{datasetId}/charts/scatter.png [get]
func (h *ChartHandler) Scatter(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	req := domain.ScatterChartRequest{X: r.URL.Query().Get("x"), Y: r.URL.Query().Get("y")}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	png, err := h.service.Scatter(r.Context(), id, req)
	if err != nil {
		writeError(w, err, "Failed to render chart")
		return
	}
	writePNG(w, chart.ScatterFilename(req.X, req.Y), png)
}

// Heatmap handles GET /v1/datasets/{datasetId}/charts/correlation.png
// @Summary Correlation heatmap
// @Tags charts
// @Produce png
// @Param datasetId path string true "Dataset UUID" format(uuid)
// @Param labels query string false "Comma-separated numeric columns in display order (defaults to all)"
// @Success 200 {file} binary "PNG image"
// @Failure 404 {object} problem.Problem "Dataset not found"
// @Failure 422 {object} problem.Problem "Unknown or non-numeric column"
// @Router /datasets/{datasetId}/charts/correlation.png [get]
func (h *ChartHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	png, err := h.service.Heatmap(r.Context(), id, correlationRequest(r))
	if err != nil {
		writeError(w, err, "Failed to render chart")
		return
	}
	writePNG(w, chart.HeatmapFilename, png)
}

// Correlation handles GET /v1/datasets/{datasetId}/correlation
// @Summary Correlation matrix
// @Description Pairwise Pearson correlations as a {z, x, y} heatmap payload. Undefined cells are null.
// @Tags charts
// @Produce json
// @Param datasetId path string true "Dataset UUID" format(uuid)
// @Param labels query string false "Comma-separated numeric columns in display order (defaults to all)"
// @Success 200 {object} domain.HeatmapPayload "Correlation matrix"
// @Failure 404 {object} problem.Problem "Dataset not found"
// @Failure 422 {object} problem.Problem "Unknown or non-numeric column"
// @Router /datasets/{datasetId}/correlation [get]
func (h *ChartHandler) Correlation(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	payload, err := h.service.Correlation(r.Context(), id, correlationRequest(r))
	if err != nil {
		writeError(w, err, "Failed to compute correlations")
		return
	}
	render.JSON(w, r, payload)
}

// Export handles GET /v1/datasets/{datasetId}/export.xlsx
// @Summary Export table
// @Description Download the unified table as a spreadsheet.
// @Tags charts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param datasetId path string true "Dataset UUID" format(uuid)
// @Success 200 {file} binary "XLSX workbook"
// @Failure 404 {object} problem.Problem "Dataset not found"
// @Router /datasets/{datasetId}/export.xlsx [get]
func (h *ChartHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	// Buffer so that failures can still be reported as problems
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), id, &buf); err != nil {
		writeError(w, err, "Failed to export dataset")
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.Write(buf.Bytes())
}

func correlationRequest(r *http.Request) domain.CorrelationRequest {
	return domain.CorrelationRequest{Labels: splitParam(r.URL.Query().Get("labels"))}
}

func writePNG(w http.ResponseWriter, filename string, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="`+filename+`"`)
	w.Write(png)
}

func splitParam(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
