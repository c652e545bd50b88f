package domain

// PaymentStatus описывает состояние платежа по заказу.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod — закрытое множество способов оплаты.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodCard PaymentMethod = "Card"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

// Valid сообщает, входит ли способ оплаты в допустимое множество.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI:
		return true
	default:
		return false
	}
}

// Payment описывает платёж, связанный с заказом один-к-одному.
type Payment struct {
	ID      int64         `json:"payment_id"`
	OrderID int64         `json:"order_id"`
	Amount  float64       `json:"amount"`
	Status  PaymentStatus `json:"status"`
	// Method пуст, пока платёж не обработан (NULL в хранилище).
	Method string `json:"method,omitempty"`
}

// PaymentResult возвращается обработкой платежа: платёж и обновлённый заказ.
type PaymentResult struct {
	Payment Payment `json:"payment"`
	Order   Order   `json:"order"`
}
