package handler

import (
	"net/http"

	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/go-chi/render"
)

// InsightsHandler handles dataset insights endpoints.
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetInsights handles GET /v1/datasets/{datasetId}/insights
// @Summary Explain a dataset
// @Description Summarize the dataset and ask an LLM for a short markdown explanation. Requires OPENAI_API_KEY.
// @Tags insights
// @Produce json
// @Param datasetId path string true "Dataset UUID" format(uuid)
// @Success 200 {object} domain.InsightsResponse "Summary and explanation"
// @Failure 400 {object} problem.Problem "Invalid dataset ID"
// @Failure 404 {object} problem.Problem "Dataset not found"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM not configured"
// @Router /datasets/{datasetId}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	resp, err := h.insightsService.Generate(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to generate insights")
		return
	}
	render.JSON(w, r, resp)
}
