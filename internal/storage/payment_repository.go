package storage

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/retail/internal/domain"
	"github.com/vladislavdragonenkov/retail/internal/recordstore"
)

type paymentRepository struct {
	client recordstore.Client
}

// NewPaymentRepository создаёт компонент доступа к таблице payments.
func NewPaymentRepository(client recordstore.Client) domain.PaymentRepository {
	return &paymentRepository{client: client}
}

func (r *paymentRepository) Create(ctx context.Context, orderID int64, amount float64) (domain.Payment, error) {
	rec := recordstore.Record{
		"order_id": orderID,
		"amount":   amount,
		"status":   string(domain.PaymentStatusPending),
		"method":   nil,
	}
	if err := r.client.Insert(ctx, "payments", rec); err != nil {
		return domain.Payment{}, fmt.Errorf("insert payment: %w", err)
	}
	return r.GetByOrder(ctx, orderID)
}

func (r *paymentRepository) GetByOrder(ctx context.Context, orderID int64) (domain.Payment, error) {
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "payments",
		Filters: []recordstore.Filter{recordstore.Eq("order_id", orderID)},
		Limit:   1,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("select payment: %w", err)
	}
	rec, ok := one(records)
	if !ok {
		return domain.Payment{}, domain.ErrPaymentNotFound
	}
	return decodePayment(rec), nil
}

func (r *paymentRepository) Update(ctx context.Context, paymentID int64, status domain.PaymentStatus, method string) (domain.Payment, error) {
	fields := recordstore.Record{"status": string(status)}
	if method != "" {
		fields["method"] = method
	}

	err := r.client.Update(ctx, "payments", fields,
		[]recordstore.Filter{recordstore.Eq("payment_id", paymentID)})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("update payment: %w", err)
	}

	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "payments",
		Filters: []recordstore.Filter{recordstore.Eq("payment_id", paymentID)},
		Limit:   1,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("select updated payment: %w", err)
	}
	rec, ok := one(records)
	if !ok {
		return domain.Payment{}, domain.ErrPaymentNotFound
	}
	return decodePayment(rec), nil
}

func decodePayment(rec recordstore.Record) domain.Payment {
	return domain.Payment{
		ID:      asInt64(rec["payment_id"]),
		OrderID: asInt64(rec["order_id"]),
		Amount:  asFloat64(rec["amount"]),
		Status:  domain.PaymentStatus(asString(rec["status"])),
		Method:  asString(rec["method"]),
	}
}

var _ domain.PaymentRepository = (*paymentRepository)(nil)
