package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail/internal/recordstore"
	"github.com/vladislavdragonenkov/retail/internal/recordstore/memory"
	"github.com/vladislavdragonenkov/retail/internal/recordstore/postgres"
	"github.com/vladislavdragonenkov/retail/internal/service/customer"
	"github.com/vladislavdragonenkov/retail/internal/service/order"
	"github.com/vladislavdragonenkov/retail/internal/service/payment"
	"github.com/vladislavdragonenkov/retail/internal/service/product"
	"github.com/vladislavdragonenkov/retail/internal/service/reporting"
	"github.com/vladislavdragonenkov/retail/internal/storage"
)

// Dependencies содержит все сервисы приложения и ресурс подключения.
type Dependencies struct {
	Customers *customer.Service
	Products  *product.Service
	Orders    *order.Service
	Payments  *payment.Service
	Reports   *reporting.Service

	store *postgres.Store
}

// NewDependencies создаёт единственный Record Store клиент и собирает на нём
// все компоненты доступа и сервисы.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &Dependencies{}

	var client recordstore.Client
	switch Backend(cfg.Backend) {
	case BackendMemory:
		client = memory.NewClient()
		logger.Warn("используется in-memory Record Store: данные не переживут завершение команды")
	default:
		store, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		deps.store = store
		client = postgres.NewClient(store)
	}

	customers := storage.NewCustomerRepository(client)
	products := storage.NewProductRepository(client)
	orders := storage.NewOrderRepository(client)
	payments := storage.NewPaymentRepository(client)
	reports := storage.NewReportingRepository(client)

	deps.Customers = customer.NewService(customers, logger.WithField("component", "customer-service"))
	deps.Products = product.NewService(products, logger.WithField("component", "product-service"))
	deps.Orders = order.NewService(orders, products, customers, logger.WithField("component", "order-service"))
	deps.Payments = payment.NewService(payments, orders, logger.WithField("component", "payment-service"))
	deps.Reports = reporting.NewService(reports)

	return deps, nil
}

// Close освобождает подключение к базе, если оно открывалось.
func (d *Dependencies) Close() error {
	if d == nil || d.store == nil {
		return nil
	}
	return d.store.Close()
}
