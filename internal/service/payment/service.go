// Package payment реализует операции над платежами заказов.
package payment

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail/internal/domain"
)

// Service оркестрирует платёжные записи и статус связанного заказа.
type Service struct {
	payments domain.PaymentRepository
	orders   domain.OrderRepository
	logger   *log.Entry
}

// NewService создаёт платёжный сервис.
func NewService(payments domain.PaymentRepository, orders domain.OrderRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "payment-service")
	}
	return &Service{payments: payments, orders: orders, logger: logger}
}

// CreatePending вставляет платёж PENDING без способа оплаты.
//
// Создание заказа платёжную запись не создаёт: вызов этой операции — явный
// второй шаг протокола, без которого Process завершится ошибкой отсутствия
// платёжной записи.
func (s *Service) CreatePending(ctx context.Context, orderID int64, amount float64) (domain.Payment, error) {
	payment, err := s.payments.Create(ctx, orderID, amount)
	if err != nil {
		return domain.Payment{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id":   orderID,
		"payment_id": payment.ID,
		"amount":     amount,
	}).Info("создан ожидающий платёж")

	return payment, nil
}

// Process отмечает платёж оплаченным указанным способом и завершает заказ.
// Заказ обязан существовать, быть в статусе PLACED и иметь платёжную запись.
func (s *Service) Process(ctx context.Context, orderID int64, method domain.PaymentMethod) (domain.PaymentResult, error) {
	if !method.Valid() {
		return domain.PaymentResult{}, domain.ErrPaymentMethodInvalid
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	if order.Status != domain.OrderStatusPlaced {
		return domain.PaymentResult{}, domain.ErrPaymentOrderNotPlaced
	}

	payment, err := s.payments.GetByOrder(ctx, orderID)
	if err != nil {
		return domain.PaymentResult{}, err
	}

	updatedPayment, err := s.payments.Update(ctx, payment.ID, domain.PaymentStatusPaid, string(method))
	if err != nil {
		return domain.PaymentResult{}, err
	}

	updatedOrder, err := s.orders.UpdateStatus(ctx, orderID, domain.OrderStatusCompleted)
	if err != nil {
		return domain.PaymentResult{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id":   orderID,
		"payment_id": payment.ID,
		"method":     method,
	}).Info("платёж обработан, заказ завершён")

	return domain.PaymentResult{Payment: updatedPayment, Order: updatedOrder}, nil
}

// Refund переводит платёж заказа в REFUNDED. Предыдущий статус платежа
// не проверяется; статус заказа и остатки не меняются.
func (s *Service) Refund(ctx context.Context, orderID int64) (domain.Payment, error) {
	payment, err := s.payments.GetByOrder(ctx, orderID)
	if err != nil {
		return domain.Payment{}, err
	}

	updated, err := s.payments.Update(ctx, payment.ID, domain.PaymentStatusRefunded, "")
	if err != nil {
		return domain.Payment{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id":   orderID,
		"payment_id": payment.ID,
	}).Info("платёж возвращён")

	return updated, nil
}
