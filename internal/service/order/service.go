// Package order реализует жизненный цикл заказа: создание со списанием
// остатков, составное представление, отмену с возвратом остатков и завершение.
package order

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail/internal/domain"
)

// Service оркестрирует компоненты доступа к заказам, товарам и клиентам.
type Service struct {
	orders    domain.OrderRepository
	products  domain.ProductRepository
	customers domain.CustomerRepository
	logger    *log.Entry
}

// NewService создаёт сервис заказов.
func NewService(
	orders domain.OrderRepository,
	products domain.ProductRepository,
	customers domain.CustomerRepository,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &Service{
		orders:    orders,
		products:  products,
		customers: customers,
		logger:    logger,
	}
}

// Create проверяет клиента, наличие и остатки всех товаров, затем списывает
// остатки и создаёт заказ с позициями.
//
// Проверка остатков выполняется по всем позициям до первого списания:
// при нехватке по любой позиции ни один остаток не изменяется. Сами списания
// и вставки идут независимыми вызовами без отката (см. DESIGN.md).
func (s *Service) Create(ctx context.Context, customerID int64, lines []domain.OrderLine) (domain.Order, error) {
	if err := domain.ValidateLines(lines); err != nil {
		return domain.Order{}, err
	}

	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return domain.Order{}, err
	}

	for _, line := range lines {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return domain.Order{}, err
		}
		if product.Stock < line.Quantity {
			return domain.Order{}, fmt.Errorf("%w: id %d", domain.ErrInsufficientStock, line.ProductID)
		}
	}

	// Остаток перечитывается перед каждым списанием: между проверкой и
	// этим шагом он мог измениться другим вызовом.
	for _, line := range lines {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return domain.Order{}, err
		}
		_, err = s.products.UpdateFields(ctx, line.ProductID, map[string]any{
			"stock": product.Stock - line.Quantity,
		})
		if err != nil {
			return domain.Order{}, err
		}
	}

	order, err := s.orders.Create(ctx, customerID, lines)
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id":     order.ID,
		"customer_id":  order.CustomerID,
		"total_amount": order.TotalAmount,
		"lines":        len(lines),
	}).Info("заказ создан")

	return order, nil
}

// Details собирает составное представление: заказ, клиент и позиции
// со снимками товаров. Только чтение, без побочных эффектов.
func (s *Service) Details(ctx context.Context, orderID int64) (domain.OrderDetails, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return domain.OrderDetails{}, err
	}

	customer, err := s.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		return domain.OrderDetails{}, err
	}

	items, err := s.orders.Items(ctx, orderID)
	if err != nil {
		return domain.OrderDetails{}, err
	}

	details := domain.OrderDetails{
		Order:    order,
		Customer: customer,
		Items:    make([]domain.OrderItemDetail, 0, len(items)),
	}
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return domain.OrderDetails{}, err
		}
		details.Items = append(details.Items, domain.OrderItemDetail{
			OrderItemID: item.ID,
			Product:     product,
			Quantity:    item.Quantity,
		})
	}

	return details, nil
}

// ListByCustomer возвращает заказы существующего клиента.
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.orders.ListByCustomer(ctx, customerID)
}

// Cancel возвращает остатки по всем позициям и переводит заказ в CANCELLED.
// Допустим только из статуса PLACED.
func (s *Service) Cancel(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status != domain.OrderStatusPlaced {
		return domain.Order{}, domain.ErrOrderInvalidTransition
	}

	items, err := s.orders.Items(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return domain.Order{}, err
		}
		_, err = s.products.UpdateFields(ctx, item.ProductID, map[string]any{
			"stock": product.Stock + item.Quantity,
		})
		if err != nil {
			return domain.Order{}, err
		}
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, domain.OrderStatusCancelled)
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id": orderID,
		"items":    len(items),
	}).Info("заказ отменён, остатки возвращены")

	return updated, nil
}

// Complete переводит заказ PLACED в COMPLETED без проверки оплаты.
// Это самостоятельный путь завершения наряду с обработкой платежа.
func (s *Service) Complete(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Status != domain.OrderStatusPlaced {
		return domain.Order{}, domain.ErrOrderInvalidTransition
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, domain.OrderStatusCompleted)
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.WithField("order_id", orderID).Info("заказ завершён")
	return updated, nil
}
