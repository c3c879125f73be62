package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/google/uuid"
)

func TestDatasetRepository_CreateAndGet(t *testing.T) {
	repo := NewDatasetRepository()
	ctx := context.Background()

	d := &domain.Dataset{Name: "export", CreatedAt: time.Now()}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Fatalf("expected an ID to be assigned")
	}

	got, err := repo.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != d {
		t.Fatalf("expected stored dataset, got %+v", got)
	}

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDatasetRepository_ListNewestFirst(t *testing.T) {
	repo := NewDatasetRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		d := &domain.Dataset{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 || list[0].Name != "third" || list[2].Name != "first" {
		t.Fatalf("unexpected order: %v, %v, %v", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestDatasetRepository_CancelledContext(t *testing.T) {
	repo := NewDatasetRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Create(ctx, &domain.Dataset{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDatasetRepository_Concurrent(t *testing.T) {
	repo := NewDatasetRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := &domain.Dataset{CreatedAt: time.Now()}
			_ = repo.Create(ctx, d)
			_, _ = repo.GetByID(ctx, d.ID)
			_, _ = repo.List(ctx)
		}()
	}
	wg.Wait()

	list, _ := repo.List(ctx)
	if len(list) != 20 {
		t.Fatalf("expected 20 datasets, got %d", len(list))
	}
}
