package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
	"github.com/go-chi/render"
)

// MaxUploadBytes bounds the multipart body of a dataset upload.
const MaxUploadBytes = 64 << 20

type DatasetHandler struct {
	service service.DatasetService
}

func NewDatasetHandler(service service.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// Create handles POST /v1/datasets
// @Summary Upload sleep exports
// @Description Load one or more Fitbit sleep export files into a unified table. Files are read in the order given; naps are excluded.
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Fitbit sleep export JSON files (repeat for several)"
// @Param name formData string false "Display name (defaults to the first file name)"
// @Param discover_stages formData boolean false "Also derive percentages for legacy stages (asleep, awake, restless)"
// @Success 201 {object} domain.DatasetResponse "Dataset loaded"
// @Failure 400 {object} problem.Problem "Missing files"
// @Failure 422 {object} problem.Problem "Malformed or inconsistent export"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /datasets [post]
func (h *DatasetHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		problem.BadRequest("Invalid multipart body").Write(w)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		problem.ValidationError("Request contains invalid fields", []problem.FieldError{
			{Field: "files", Message: "is required"},
		}).Write(w)
		return
	}

	sources := make([]fitbit.Source, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			problem.BadRequest("Failed to read uploaded file " + fh.Filename).Write(w)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			problem.BadRequest("Failed to read uploaded file " + fh.Filename).Write(w)
			return
		}
		sources = append(sources, fitbit.BytesSource{Label: fh.Filename, Data: data})
	}

	discover, _ := strconv.ParseBool(r.FormValue("discover_stages"))
	dataset, err := h.service.Load(r.Context(), service.LoadRequest{
		Name:           r.FormValue("name"),
		Sources:        sources,
		DiscoverStages: discover,
	})
	if err != nil {
		writeError(w, err, "Failed to load dataset")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, dataset.ToResponse())
}

// List handles GET /v1/datasets
// @Summary List datasets
// @Description Datasets loaded in this session, newest first.
// @Tags datasets
// @Produce json
// @Success 200 {object} domain.DatasetListResponse "Loaded datasets"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /datasets [get]
func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	datasets, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err, "Failed to list datasets")
		return
	}

	resp := domain.DatasetListResponse{Data: make([]domain.DatasetResponse, 0, len(datasets))}
	for _, d := range datasets {
		resp.Data = append(resp.Data, d.ToResponse())
	}
	render.JSON(w, r, resp)
}

// GetByID handles GET /v1/datasets/{datasetId}
// @Summary Get dataset
// @Tags datasets
// @Produce json
// @Param datasetId path string true "Dataset UUID" format(uuid)
// @Success 200 {object} domain.DatasetResponse "Dataset metadata"
// @Failure 400 {object} problem.Problem "Invalid dataset ID"
// @Failure 404 {object} problem.Problem "Dataset not found"
// @Router /datasets/{datasetId} [get]
func (h *DatasetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	dataset, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get dataset")
		return
	}
	render.JSON(w, r, dataset.ToResponse())
}

// Rows handles GET /v1/datasets/{datasetId}/rows
// @Summary List table rows
// @Description Page through the unified table in date order. Non-finite numbers are returned as null.
// @Tags datasets
// @Produce json
// @Param datasetId path string true "Dataset UUID" format(uuid)
// @Param limit query integer false "Rows per page (1-500)" default(50) minimum(1) maximum(500)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.RowListResponse "Rows with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "Dataset not found"
// @Router /datasets/{datasetId}/rows [get]
func (h *DatasetHandler) Rows(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	filter := domain.RowFilter{Cursor: r.URL.Query().Get("cursor")}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "limit", Message: "must be a positive integer"},
			}).Write(w)
			return
		}
		filter.Limit = limit
	}

	resp, err := h.service.Rows(r.Context(), id, filter)
	if err != nil {
		writeError(w, err, "Failed to list rows")
		return
	}
	render.JSON(w, r, resp)
}

// Summary handles GET /v1/datasets/{datasetId}/summary
// @Summary Get dataset summary
// @Description Descriptive statistics of duration, efficiency and start time, mean stage shares and chronotype.
// @Tags datasets
// @Produce json
// @Param datasetId path string true "Dataset UUID" format(uuid)
// @Success 200 {object} domain.DatasetSummary "Summary statistics"
// @Failure 404 {object} problem.Problem "Dataset not found"
// @Router /datasets/{datasetId}/summary [get]
func (h *DatasetHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to summarize dataset")
		return
	}
	render.JSON(w, r, summary)
}
