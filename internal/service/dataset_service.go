package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/analysis"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/blaisecz/fitbit-sleep/internal/logger"
	"github.com/blaisecz/fitbit-sleep/internal/metrics"
	"github.com/blaisecz/fitbit-sleep/internal/repository"
	"github.com/blaisecz/fitbit-sleep/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LoadRequest describes a set of export sources to turn into a dataset.
type LoadRequest struct {
	Name    string
	Sources []fitbit.Source
	// DiscoverStages adds percentage columns for legacy stages
	DiscoverStages bool
}

// DatasetService loads sleep exports and serves the resulting tables.
type DatasetService interface {
	Load(ctx context.Context, req LoadRequest) (*domain.Dataset, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
	List(ctx context.Context) ([]*domain.Dataset, error)
	// Rows pages through the table in date order.
	Rows(ctx context.Context, id uuid.UUID, filter domain.RowFilter) (*domain.RowListResponse, error)
	Summary(ctx context.Context, id uuid.UUID) (*domain.DatasetSummary, error)
}

type datasetService struct {
	repo    repository.DatasetRepository
	metrics *metrics.Metrics
	log     *logger.Logger
	now     func() time.Time
}

func NewDatasetService(repo repository.DatasetRepository, m *metrics.Metrics, log *logger.Logger) DatasetService {
	return &datasetService{
		repo:    repo,
		metrics: m,
		log:     log,
		now:     time.Now,
	}
}

func (s *datasetService) Load(ctx context.Context, req LoadRequest) (*domain.Dataset, error) {
	tracer := otel.Tracer("fitbit-sleep/datasets")
	ctx, span := tracer.Start(ctx, "DatasetService.Load",
		trace.WithAttributes(
			attribute.String("dataset.name", req.Name),
			attribute.Int("dataset.sources", len(req.Sources)),
			attribute.Bool("dataset.discover_stages", req.DiscoverStages),
		),
	)
	defer span.End()

	names := make([]string, 0, len(req.Sources))
	for _, src := range req.Sources {
		names = append(names, src.Name())
	}
	if inputJSON, err := json.Marshal(map[string]any{"name": req.Name, "sources": names}); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	opts := []fitbit.Option{fitbit.WithObserver(func(p fitbit.Progress) {
		s.log.Debug("loaded sleep source", "source", p.Source, "index", p.Index, "total", p.Total, "records", p.Records)
	})}
	if req.DiscoverStages {
		opts = append(opts, fitbit.WithDiscoveredStages())
	}

	report, err := fitbit.NewLoader(opts...).LoadReport(ctx, req.Sources)
	if err != nil {
		s.metrics.LoadFailed(ErrorKind(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	name := req.Name
	if name == "" && len(names) > 0 {
		name = names[0]
	}
	dataset := &domain.Dataset{
		ID:        uuid.New(),
		Name:      name,
		Sources:   names,
		Table:     report.Table,
		Excluded:  report.Excluded,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, dataset); err != nil {
		return nil, err
	}

	s.metrics.Loaded(len(req.Sources), report.Records, report.Excluded)
	s.log.Info("dataset loaded",
		"dataset_id", dataset.ID.String(),
		"name", dataset.Name,
		"rows", dataset.Table.Len(),
		"excluded", dataset.Excluded,
	)

	span.SetAttributes(
		attribute.String("dataset.id", dataset.ID.String()),
		attribute.Int("dataset.rows", dataset.Table.Len()),
	)
	if outputJSON, err := json.Marshal(dataset.ToResponse()); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return dataset, nil
}

func (s *datasetService) Get(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *datasetService) List(ctx context.Context) ([]*domain.Dataset, error) {
	return s.repo.List(ctx)
}

func (s *datasetService) Rows(ctx context.Context, id uuid.UUID, filter domain.RowFilter) (*domain.RowListResponse, error) {
	dataset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	table := dataset.Table

	offset := 0
	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed cursor", domain.ErrInvalidInput)
	}
	if cursor != nil {
		if cursor.Offset < 0 || cursor.Offset >= table.Len() || !table.Rows[cursor.Offset].Date.Equal(cursor.Date) {
			return nil, fmt.Errorf("%w: cursor does not match this dataset", domain.ErrInvalidInput)
		}
		offset = cursor.Offset
	}

	start, end, hasMore := pagination.Window(table.Len(), offset, filter.Limit)
	resp := &domain.RowListResponse{
		Columns: table.Columns,
		Data:    make([]domain.RowResponse, 0, end-start),
	}
	for _, r := range table.Rows[start:end] {
		resp.Data = append(resp.Data, domain.ToRowResponse(r))
	}
	if hasMore {
		next := &pagination.Cursor{Offset: end, Date: table.Rows[end].Date}
		resp.Pagination = domain.PaginationResponse{NextCursor: next.Encode(), HasMore: true}
	}
	return resp, nil
}

func (s *datasetService) Summary(ctx context.Context, id uuid.UUID) (*domain.DatasetSummary, error) {
	dataset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := analysis.Summarize(dataset.Table)
	return &summary, nil
}

// ErrorKind names the sentinel behind err for metric labels.
func ErrorKind(err error) string {
	kinds := []struct {
		err  error
		kind string
	}{
		{domain.ErrMalformedSource, "malformed_source"},
		{domain.ErrShapeMismatch, "shape_mismatch"},
		{domain.ErrMissingDate, "missing_date"},
		{domain.ErrInvalidDate, "invalid_date"},
		{domain.ErrInvalidField, "invalid_field"},
		{domain.ErrInvalidInput, "invalid_input"},
		{context.Canceled, "canceled"},
		{context.DeadlineExceeded, "deadline_exceeded"},
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "other"
}
