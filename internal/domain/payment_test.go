package domain_test

import (
	"testing"

	"github.com/vladislavdragonenkov/retail/internal/domain"
)

func TestPaymentMethodValid(t *testing.T) {
	valid := []domain.PaymentMethod{
		domain.PaymentMethodCash,
		domain.PaymentMethodCard,
		domain.PaymentMethodUPI,
	}
	for _, m := range valid {
		if !m.Valid() {
			t.Errorf("method %q must be valid", m)
		}
	}

	invalid := []domain.PaymentMethod{"", "cash", "CARD", "bitcoin"}
	for _, m := range invalid {
		if m.Valid() {
			t.Errorf("method %q must be invalid", m)
		}
	}
}
