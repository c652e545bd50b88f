// Package product реализует операции каталога товаров.
package product

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail/internal/domain"
)

// Service применяет бизнес-правила к операциям каталога.
type Service struct {
	products domain.ProductRepository
	logger   *log.Entry
}

// NewService создаёт сервис каталога.
func NewService(products domain.ProductRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "product-service")
	}
	return &Service{products: products, logger: logger}
}

// Add заводит товар. Имя и SKU обязательны, цена и остаток неотрицательны.
func (s *Service) Add(ctx context.Context, name, sku string, price float64, stock int64, category string) (domain.Product, error) {
	p := domain.Product{
		Name:     name,
		SKU:      sku,
		Price:    price,
		Stock:    stock,
		Category: category,
	}
	if err := p.ValidateNew(); err != nil {
		return domain.Product{}, err
	}

	created, err := s.products.Create(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}

	s.logger.WithFields(log.Fields{
		"product_id": created.ID,
		"sku":        created.SKU,
	}).Info("товар добавлен в каталог")

	return created, nil
}

// Get возвращает товар по идентификатору.
func (s *Service) Get(ctx context.Context, id int64) (domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// List возвращает товары, опционально отфильтрованные по категории.
func (s *Service) List(ctx context.Context, limit int, category string) ([]domain.Product, error) {
	return s.products.List(ctx, limit, category)
}
