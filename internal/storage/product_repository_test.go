package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/retail/internal/domain"
	"github.com/vladislavdragonenkov/retail/internal/recordstore/memory"
	"github.com/vladislavdragonenkov/retail/internal/storage"
)

func TestProductRepository_CreateAndGet(t *testing.T) {
	repo := storage.NewProductRepository(memory.NewClient())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Product{
		Name:     "Laptop",
		SKU:      "lap-001",
		Price:    1999.0,
		Stock:    10,
		Category: "electronics",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned product id")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.SKU != "lap-001" || got.Price != 1999.0 || got.Stock != 10 {
		t.Errorf("unexpected product: %+v", got)
	}
}

func TestProductRepository_GetMissing(t *testing.T) {
	repo := storage.NewProductRepository(memory.NewClient())

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_ListByCategory(t *testing.T) {
	repo := storage.NewProductRepository(memory.NewClient())
	ctx := context.Background()

	seed := []domain.Product{
		{Name: "Laptop", SKU: "s1", Price: 10, Category: "electronics"},
		{Name: "Mouse", SKU: "s2", Price: 5, Category: "electronics"},
		{Name: "Chair", SKU: "s3", Price: 50, Category: "furniture"},
	}
	for _, p := range seed {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	all, err := repo.List(ctx, 0, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 products, got %d", len(all))
	}

	electronics, err := repo.List(ctx, 0, "electronics")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(electronics) != 2 {
		t.Errorf("expected 2 electronics, got %d", len(electronics))
	}

	limited, err := repo.List(ctx, 1, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 product with limit, got %d", len(limited))
	}
}

func TestProductRepository_UpdateFields(t *testing.T) {
	repo := storage.NewProductRepository(memory.NewClient())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Product{Name: "Laptop", SKU: "s1", Price: 10, Stock: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateFields(ctx, created.ID, map[string]any{
		"price": 12.5,
		"stock": int64(3),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 12.5 || updated.Stock != 3 {
		t.Errorf("unexpected product after update: %+v", updated)
	}

	_, err = repo.UpdateFields(ctx, created.ID, map[string]any{})
	if !errors.Is(err, domain.ErrProductInvalidFields) {
		t.Fatalf("expected ErrProductInvalidFields, got %v", err)
	}
}
