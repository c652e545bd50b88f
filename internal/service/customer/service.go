// Package customer реализует операции управления клиентами.
package customer

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail/internal/domain"
)

// Service применяет бизнес-правила к операциям над клиентами.
type Service struct {
	customers domain.CustomerRepository
	logger    *log.Entry
}

// NewService создаёт клиентский сервис.
func NewService(customers domain.CustomerRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "customer-service")
	}
	return &Service{customers: customers, logger: logger}
}

// Create регистрирует клиента. Имя и email обязательны, email уникален.
func (s *Service) Create(ctx context.Context, name, email, phone, city string) (domain.Customer, error) {
	created, err := s.customers.Create(ctx, domain.Customer{
		Name:  name,
		Email: email,
		Phone: phone,
		City:  city,
	})
	if err != nil {
		return domain.Customer{}, err
	}

	s.logger.WithFields(log.Fields{
		"customer_id": created.ID,
		"email":       created.Email,
	}).Info("клиент зарегистрирован")

	return created, nil
}

// Get возвращает клиента по идентификатору.
func (s *Service) Get(ctx context.Context, id int64) (domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Update меняет телефон и/или город; хотя бы одно поле обязательно.
// nil означает "не трогать", пустая строка записывается как значение.
func (s *Service) Update(ctx context.Context, id int64, phone, city *string) (domain.Customer, error) {
	fields := make(map[string]any)
	if phone != nil {
		fields["phone"] = *phone
	}
	if city != nil {
		fields["city"] = *city
	}
	if len(fields) == 0 {
		return domain.Customer{}, domain.ErrCustomerNoUpdateFields
	}

	updated, err := s.customers.Update(ctx, id, fields)
	if err != nil {
		return domain.Customer{}, err
	}

	s.logger.WithField("customer_id", id).Info("клиент обновлён")
	return updated, nil
}

// Delete удаляет клиента без заказов и возвращает удалённую запись.
func (s *Service) Delete(ctx context.Context, id int64) (domain.Customer, error) {
	deleted, err := s.customers.Delete(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	s.logger.WithField("customer_id", id).Info("клиент удалён")
	return deleted, nil
}

// List возвращает клиентов, ограничивая выборку limit.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Customer, error) {
	return s.customers.List(ctx, limit)
}

// Search ищет клиентов по точному совпадению email и/или города.
func (s *Service) Search(ctx context.Context, email, city string) ([]domain.Customer, error) {
	return s.customers.Search(ctx, email, city)
}
