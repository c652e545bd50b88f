package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/retail/internal/domain"
	"github.com/vladislavdragonenkov/retail/internal/recordstore/memory"
	"github.com/vladislavdragonenkov/retail/internal/storage"
)

func TestPaymentRepository_CreatePending(t *testing.T) {
	repo := storage.NewPaymentRepository(memory.NewClient())
	ctx := context.Background()

	payment, err := repo.Create(ctx, 1, 150.0)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if payment.ID == 0 {
		t.Fatal("expected assigned payment id")
	}
	if payment.Status != domain.PaymentStatusPending {
		t.Errorf("new payment must be PENDING, got %s", payment.Status)
	}
	if payment.Method != "" {
		t.Errorf("method must be empty until payment is processed, got %q", payment.Method)
	}
	if payment.Amount != 150.0 {
		t.Errorf("unexpected amount: %v", payment.Amount)
	}
}

func TestPaymentRepository_GetByOrderMissing(t *testing.T) {
	repo := storage.NewPaymentRepository(memory.NewClient())

	_, err := repo.GetByOrder(context.Background(), 5)
	if !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestPaymentRepository_UpdateStatusAndMethod(t *testing.T) {
	repo := storage.NewPaymentRepository(memory.NewClient())
	ctx := context.Background()

	payment, err := repo.Create(ctx, 1, 99.0)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	paid, err := repo.Update(ctx, payment.ID, domain.PaymentStatusPaid, string(domain.PaymentMethodCard))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if paid.Status != domain.PaymentStatusPaid || paid.Method != "Card" {
		t.Errorf("unexpected payment after update: %+v", paid)
	}

	// Пустой метод означает "не трогать": при возврате способ оплаты сохраняется.
	refunded, err := repo.Update(ctx, payment.ID, domain.PaymentStatusRefunded, "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if refunded.Status != domain.PaymentStatusRefunded {
		t.Errorf("expected REFUNDED, got %s", refunded.Status)
	}
	if refunded.Method != "Card" {
		t.Errorf("method must be preserved on refund, got %q", refunded.Method)
	}
}
