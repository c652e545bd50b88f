package domain

// ProductSales — строка отчёта по продажам товара.
type ProductSales struct {
	ProductID int64 `json:"product_id"`
	// QuantitySold — суммарное количество по всем позициям заказов.
	QuantitySold int64 `json:"sum_quantity"`
}

// CustomerOrders — строка отчёта по количеству заказов клиента.
type CustomerOrders struct {
	CustomerID int64 `json:"customer_id"`
	OrderCount int64 `json:"order_count"`
}
