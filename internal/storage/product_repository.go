package storage

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/retail/internal/domain"
	"github.com/vladislavdragonenkov/retail/internal/recordstore"
)

type productRepository struct {
	client recordstore.Client
}

// NewProductRepository создаёт компонент доступа к таблице products.
func NewProductRepository(client recordstore.Client) domain.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	rec := recordstore.Record{
		"name":     p.Name,
		"sku":      p.SKU,
		"price":    p.Price,
		"stock":    p.Stock,
		"category": nullable(p.Category),
	}
	if err := r.client.Insert(ctx, "products", rec); err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}

	// SKU уникален, перечитываем созданную запись по нему.
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "products",
		Filters: []recordstore.Filter{recordstore.Eq("sku", p.SKU)},
		Limit:   1,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("select created product: %w", err)
	}
	created, ok := one(records)
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s not visible after insert", p.SKU)
	}
	return decodeProduct(created), nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "products",
		Filters: []recordstore.Filter{recordstore.Eq("product_id", id)},
		Limit:   1,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}
	rec, ok := one(records)
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	return decodeProduct(rec), nil
}

func (r *productRepository) List(ctx context.Context, limit int, category string) ([]domain.Product, error) {
	var filters []recordstore.Filter
	if category != "" {
		filters = append(filters, recordstore.Eq("category", category))
	}

	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "products",
		Filters: filters,
		OrderBy: "product_id",
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, decodeProduct(rec))
	}
	return products, nil
}

func (r *productRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (domain.Product, error) {
	if len(fields) == 0 {
		return domain.Product{}, domain.ErrProductInvalidFields
	}

	err := r.client.Update(ctx, "products", fields,
		[]recordstore.Filter{recordstore.Eq("product_id", id)})
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	return r.GetByID(ctx, id)
}

func decodeProduct(rec recordstore.Record) domain.Product {
	return domain.Product{
		ID:       asInt64(rec["product_id"]),
		Name:     asString(rec["name"]),
		SKU:      asString(rec["sku"]),
		Price:    asFloat64(rec["price"]),
		Stock:    asInt64(rec["stock"]),
		Category: asString(rec["category"]),
	}
}

var _ domain.ProductRepository = (*productRepository)(nil)
