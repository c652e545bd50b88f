package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/retail/internal/domain"
	"github.com/vladislavdragonenkov/retail/internal/recordstore"
)

type orderRepository struct {
	client recordstore.Client
}

// NewOrderRepository создаёт компонент доступа к таблицам orders и order_items.
func NewOrderRepository(client recordstore.Client) domain.OrderRepository {
	return &orderRepository{client: client}
}

// Create вставляет заказ и его позиции последовательностью независимых вызовов.
// Отката при сбое промежуточного шага нет: частично записанное состояние
// остаётся в хранилище, как и в остальных многошаговых операциях системы.
func (r *orderRepository) Create(ctx context.Context, customerID int64, lines []domain.OrderLine) (domain.Order, error) {
	rec := recordstore.Record{
		"customer_id":  customerID,
		"status":       string(domain.OrderStatusPlaced),
		"total_amount": float64(0),
		"created_at":   time.Now().UTC(),
	}
	if err := r.client.Insert(ctx, "orders", rec); err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	// Идентификатор назначается хранилищем; забираем свежесозданный заказ
	// как самую новую строку таблицы.
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "orders",
		OrderBy: "order_id",
		Desc:    true,
		Limit:   1,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("select created order: %w", err)
	}
	created, ok := one(records)
	if !ok {
		return domain.Order{}, fmt.Errorf("failed to create order")
	}
	order := decodeOrder(created)

	var total float64
	for _, line := range lines {
		if err := r.client.Insert(ctx, "order_items", recordstore.Record{
			"order_id":   order.ID,
			"product_id": line.ProductID,
			"quantity":   line.Quantity,
		}); err != nil {
			return domain.Order{}, fmt.Errorf("insert order item: %w", err)
		}

		// Итог считается по актуальной цене товара на момент вставки позиции.
		prodRecords, err := r.client.Select(ctx, recordstore.Query{
			Table:   "products",
			Columns: []string{"price"},
			Filters: []recordstore.Filter{recordstore.Eq("product_id", line.ProductID)},
			Limit:   1,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("select product price: %w", err)
		}
		if prod, ok := one(prodRecords); ok {
			total += asFloat64(prod["price"]) * float64(line.Quantity)
		}
	}

	err = r.client.Update(ctx, "orders",
		recordstore.Record{"total_amount": total},
		[]recordstore.Filter{recordstore.Eq("order_id", order.ID)})
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order total: %w", err)
	}
	order.TotalAmount = total

	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "orders",
		Filters: []recordstore.Filter{recordstore.Eq("order_id", id)},
		Limit:   1,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	rec, ok := one(records)
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return decodeOrder(rec), nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "orders",
		Filters: []recordstore.Filter{recordstore.Eq("customer_id", customerID)},
		OrderBy: "order_id",
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, decodeOrder(rec))
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.Order, error) {
	err := r.client.Update(ctx, "orders",
		recordstore.Record{"status": string(status)},
		[]recordstore.Filter{recordstore.Eq("order_id", id)})
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *orderRepository) Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "order_items",
		Filters: []recordstore.Filter{recordstore.Eq("order_id", orderID)},
		OrderBy: "order_item_id",
	})
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(records))
	for _, rec := range records {
		items = append(items, domain.OrderItem{
			ID:        asInt64(rec["order_item_id"]),
			OrderID:   asInt64(rec["order_id"]),
			ProductID: asInt64(rec["product_id"]),
			Quantity:  asInt64(rec["quantity"]),
		})
	}
	return items, nil
}

func (r *orderRepository) DeleteItems(ctx context.Context, orderID int64) error {
	err := r.client.Delete(ctx, "order_items",
		[]recordstore.Filter{recordstore.Eq("order_id", orderID)})
	if err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

func decodeOrder(rec recordstore.Record) domain.Order {
	return domain.Order{
		ID:          asInt64(rec["order_id"]),
		CustomerID:  asInt64(rec["customer_id"]),
		Status:      domain.OrderStatus(asString(rec["status"])),
		TotalAmount: asFloat64(rec["total_amount"]),
		CreatedAt:   asTime(rec["created_at"]),
	}
}

var _ domain.OrderRepository = (*orderRepository)(nil)
