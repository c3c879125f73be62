package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/llm"
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// writeError maps service errors to problem responses.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Dataset not found").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	case errors.Is(err, domain.ErrUnknownColumn):
		problem.UnknownColumn(err.Error()).Write(w)
	case errors.Is(err, domain.ErrNoData):
		problem.NoData(err.Error()).Write(w)
	case errors.Is(err, domain.ErrMalformedSource),
		errors.Is(err, domain.ErrShapeMismatch),
		errors.Is(err, domain.ErrMissingDate),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidField):
		problem.UnprocessableSource(err.Error()).Write(w)
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		problem.ServiceUnavailable("Insights are unavailable: OpenAI is not configured").Write(w)
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		problem.BadGateway("Insights generation failed").Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}

func datasetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "datasetId"))
	if err != nil {
		problem.BadRequest("Invalid dataset ID format").Write(w)
		return uuid.Nil, false
	}
	return id, true
}
