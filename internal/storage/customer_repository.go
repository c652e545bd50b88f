package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/retail/internal/domain"
	"github.com/vladislavdragonenkov/retail/internal/recordstore"
)

type customerRepository struct {
	client recordstore.Client
}

// NewCustomerRepository создаёт компонент доступа к таблице customers.
func NewCustomerRepository(client recordstore.Client) domain.CustomerRepository {
	return &customerRepository{client: client}
}

func (r *customerRepository) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if c.Name == "" || c.Email == "" {
		return domain.Customer{}, domain.ErrCustomerEmailRequired
	}

	if _, err := r.GetByEmail(ctx, c.Email); err == nil {
		return domain.Customer{}, fmt.Errorf("%w: %s", domain.ErrCustomerEmailDuplicate, c.Email)
	} else if !errors.Is(err, domain.ErrCustomerNotFound) {
		return domain.Customer{}, err
	}

	rec := recordstore.Record{
		"name":  c.Name,
		"email": c.Email,
		"phone": nullable(c.Phone),
		"city":  nullable(c.City),
	}
	if err := r.client.Insert(ctx, "customers", rec); err != nil {
		return domain.Customer{}, fmt.Errorf("insert customer: %w", err)
	}

	// Идентификатор назначает хранилище, поэтому перечитываем запись по email.
	return r.GetByEmail(ctx, c.Email)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (domain.Customer, error) {
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "customers",
		Filters: []recordstore.Filter{recordstore.Eq("customer_id", id)},
		Limit:   1,
	})
	if err != nil {
		return domain.Customer{}, fmt.Errorf("select customer: %w", err)
	}
	rec, ok := one(records)
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return decodeCustomer(rec), nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (domain.Customer, error) {
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "customers",
		Filters: []recordstore.Filter{recordstore.Eq("email", email)},
		Limit:   1,
	})
	if err != nil {
		return domain.Customer{}, fmt.Errorf("select customer by email: %w", err)
	}
	rec, ok := one(records)
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return decodeCustomer(rec), nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, fields map[string]any) (domain.Customer, error) {
	if len(fields) == 0 {
		return domain.Customer{}, domain.ErrCustomerNoUpdateFields
	}

	err := r.client.Update(ctx, "customers", fields,
		[]recordstore.Filter{recordstore.Eq("customer_id", id)})
	if err != nil {
		return domain.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *customerRepository) Delete(ctx context.Context, id int64) (domain.Customer, error) {
	orders, err := r.client.Select(ctx, recordstore.Query{
		Table:   "orders",
		Filters: []recordstore.Filter{recordstore.Eq("customer_id", id)},
		Limit:   1,
	})
	if err != nil {
		return domain.Customer{}, fmt.Errorf("check customer orders: %w", err)
	}
	if len(orders) > 0 {
		return domain.Customer{}, domain.ErrCustomerHasOrders
	}

	customer, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	err = r.client.Delete(ctx, "customers",
		[]recordstore.Filter{recordstore.Eq("customer_id", id)})
	if err != nil {
		return domain.Customer{}, fmt.Errorf("delete customer: %w", err)
	}
	return customer, nil
}

func (r *customerRepository) List(ctx context.Context, limit int) ([]domain.Customer, error) {
	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "customers",
		OrderBy: "customer_id",
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return decodeCustomers(records), nil
}

func (r *customerRepository) Search(ctx context.Context, email, city string) ([]domain.Customer, error) {
	filters := make([]recordstore.Filter, 0, 2)
	if email != "" {
		filters = append(filters, recordstore.Eq("email", email))
	}
	if city != "" {
		filters = append(filters, recordstore.Eq("city", city))
	}

	records, err := r.client.Select(ctx, recordstore.Query{
		Table:   "customers",
		Filters: filters,
		OrderBy: "customer_id",
	})
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return decodeCustomers(records), nil
}

func decodeCustomer(rec recordstore.Record) domain.Customer {
	return domain.Customer{
		ID:    asInt64(rec["customer_id"]),
		Name:  asString(rec["name"]),
		Email: asString(rec["email"]),
		Phone: asString(rec["phone"]),
		City:  asString(rec["city"]),
	}
}

func decodeCustomers(records []recordstore.Record) []domain.Customer {
	customers := make([]domain.Customer, 0, len(records))
	for _, rec := range records {
		customers = append(customers, decodeCustomer(rec))
	}
	return customers
}

var _ domain.CustomerRepository = (*customerRepository)(nil)
