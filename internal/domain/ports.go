package domain

import (
	"context"
	"time"
)

// CustomerRepository переводит операции над клиентами в запросы к Record Store.
type CustomerRepository interface {
	// Create регистрирует клиента; email обязан быть уникальным.
	Create(ctx context.Context, c Customer) (Customer, error)
	GetByID(ctx context.Context, id int64) (Customer, error)
	GetByEmail(ctx context.Context, email string) (Customer, error)
	// Update меняет произвольные поля клиента и возвращает свежую запись.
	Update(ctx context.Context, id int64, fields map[string]any) (Customer, error)
	// Delete удаляет клиента и возвращает удалённую запись.
	// Отказывает, пока за клиентом числится хотя бы один заказ.
	Delete(ctx context.Context, id int64) (Customer, error)
	List(ctx context.Context, limit int) ([]Customer, error)
	Search(ctx context.Context, email, city string) ([]Customer, error)
}

// ProductRepository переводит операции каталога в запросы к Record Store.
type ProductRepository interface {
	Create(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	List(ctx context.Context, limit int, category string) ([]Product, error)
	// UpdateFields меняет произвольные поля товара (в т.ч. stock при списании/возврате).
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (Product, error)
}

// OrderRepository переводит операции над заказами в запросы к Record Store.
type OrderRepository interface {
	// Create вставляет заказ со статусом PLACED и нулевой суммой, затем позиции,
	// накапливая итог по актуальным ценам, и дописывает итог в заказ.
	// Шаги выполняются независимыми вызовами без отката.
	Create(ctx context.Context, customerID int64, lines []OrderLine) (Order, error)
	GetByID(ctx context.Context, id int64) (Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status OrderStatus) (Order, error)
	Items(ctx context.Context, orderID int64) ([]OrderItem, error)
	// DeleteItems удаляет позиции заказа. Вспомогательная возможность,
	// не задействованная ни одной текущей операцией.
	DeleteItems(ctx context.Context, orderID int64) error
}

// PaymentRepository переводит операции над платежами в запросы к Record Store.
type PaymentRepository interface {
	// Create вставляет платёж PENDING без способа оплаты.
	Create(ctx context.Context, orderID int64, amount float64) (Payment, error)
	GetByOrder(ctx context.Context, orderID int64) (Payment, error)
	// Update меняет статус платежа; пустой method оставляет способ оплаты как есть.
	Update(ctx context.Context, paymentID int64, status PaymentStatus, method string) (Payment, error)
}

// ReportingRepository выполняет агрегатные запросы на стороне Record Store.
type ReportingRepository interface {
	TopSellingProducts(ctx context.Context, topN int) ([]ProductSales, error)
	// TotalRevenue суммирует total_amount завершённых заказов в интервале [from, to].
	TotalRevenue(ctx context.Context, from, to time.Time) (float64, error)
	OrderCountPerCustomer(ctx context.Context) ([]CustomerOrders, error)
	// CustomersWithMinOrders возвращает клиентов, у которых заказов строго больше minOrders.
	CustomersWithMinOrders(ctx context.Context, minOrders int) ([]CustomerOrders, error)
}
