package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/google/uuid"
)

type DatasetRepository interface {
	Create(ctx context.Context, dataset *domain.Dataset) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
	List(ctx context.Context) ([]*domain.Dataset, error)
}

// datasetRepository keeps loaded tables in memory for the lifetime of the process.
type datasetRepository struct {
	mu       sync.RWMutex
	datasets map[uuid.UUID]*domain.Dataset
}

func NewDatasetRepository() DatasetRepository {
	return &datasetRepository{datasets: make(map[uuid.UUID]*domain.Dataset)}
}

func (r *datasetRepository) Create(ctx context.Context, dataset *domain.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dataset.ID == uuid.Nil {
		dataset.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.datasets[dataset.ID] = dataset
	return nil
}

func (r *datasetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	dataset, ok := r.datasets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return dataset, nil
}

// List returns all datasets, newest first.
func (r *datasetRepository) List(ctx context.Context) ([]*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	list := make([]*domain.Dataset, 0, len(r.datasets))
	for _, d := range r.datasets {
		list = append(list, d)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID.String() < list[j].ID.String()
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
