package domain

import "errors"

var (
	// Ошибки клиентских операций.
	ErrCustomerEmailRequired  = errors.New("name and email are required")
	ErrCustomerEmailDuplicate = errors.New("email already exists")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrCustomerHasOrders      = errors.New("cannot delete customer with existing orders")
	// ErrCustomerNoUpdateFields возвращается, если в обновлении нет ни одного поля.
	ErrCustomerNoUpdateFields = errors.New("at least one field (phone or city) must be provided for update")

	// Ошибки каталога товаров.
	ErrProductNotFound      = errors.New("product not found")
	ErrProductInvalidFields = errors.New("invalid product fields")

	// Ошибки жизненного цикла заказа.
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderLinesRequired = errors.New("order must contain at least one line")
	// Ошибка при некорректном количестве в позиции (<= 0).
	ErrOrderQuantityInvalid = errors.New("line quantity must be greater than zero")
	// ErrInsufficientStock возвращается до каких-либо списаний, если остатка не хватает.
	ErrInsufficientStock = errors.New("not enough stock for product")
	// ErrOrderInvalidTransition — переход допустим только из статуса PLACED.
	ErrOrderInvalidTransition = errors.New("only orders with status PLACED can change state")

	// Ошибки обработки платежей.
	ErrPaymentMethodInvalid = errors.New("invalid payment method")
	// ErrPaymentNotFound — для заказа не существует платёжной записи.
	ErrPaymentNotFound = errors.New("payment record not found for order")
	// ErrPaymentOrderNotPlaced — оплата возможна только для заказа в статусе PLACED.
	ErrPaymentOrderNotPlaced = errors.New("payment can only be processed for orders with status PLACED")
)
