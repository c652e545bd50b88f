package domain

// Product описывает товарную позицию каталога.
type Product struct {
	ID   int64  `json:"product_id"`
	Name string `json:"name"`
	// SKU — внешний артикул товара, уникален.
	SKU string `json:"sku"`
	// Price — цена за единицу; не может быть отрицательной.
	Price float64 `json:"price"`
	// Stock — остаток на складе; мутируется созданием и отменой заказов.
	Stock    int64  `json:"stock"`
	Category string `json:"category,omitempty"`
}

// ValidateNew проверяет поля нового товара перед записью в каталог.
func (p Product) ValidateNew() error {
	if p.Name == "" || p.SKU == "" {
		return ErrProductInvalidFields
	}
	if p.Price < 0 {
		return ErrProductInvalidFields
	}
	if p.Stock < 0 {
		return ErrProductInvalidFields
	}
	return nil
}
