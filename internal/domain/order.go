package domain

import "time"

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPlaced — заказ создан, остатки списаны, оплата не выполнена.
	OrderStatusPlaced OrderStatus = "PLACED"
	// OrderStatusCompleted — заказ завершён (оплачен либо закрыт вручную).
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusCancelled — заказ отменён, остатки возвращены на склад.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order агрегирует состояние заказа.
type Order struct {
	ID         int64       `json:"order_id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"`
	// TotalAmount вычисляется при создании как сумма цена*количество по позициям.
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderItem представляет одну позицию заказа. Позиции неизменяемы после создания.
type OrderItem struct {
	ID        int64 `json:"order_item_id"`
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// OrderLine — запрошенная пара (товар, количество) при создании заказа.
type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// OrderItemDetail — позиция заказа вместе со снимком товара.
type OrderItemDetail struct {
	OrderItemID int64   `json:"order_item_id"`
	Product     Product `json:"product"`
	Quantity    int64   `json:"quantity"`
}

// OrderDetails — составное представление заказа для показа пользователю.
type OrderDetails struct {
	Order    Order             `json:"order"`
	Customer Customer          `json:"customer"`
	Items    []OrderItemDetail `json:"items"`
}

// ValidateLines проверяет запрошенные позиции до каких-либо обращений к хранилищу.
func ValidateLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesRequired
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return ErrOrderQuantityInvalid
		}
	}
	return nil
}
