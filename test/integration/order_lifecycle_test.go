package integration

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vladislavdragonenkov/retail/internal/domain"
	"github.com/vladislavdragonenkov/retail/internal/recordstore/memory"
	customersvc "github.com/vladislavdragonenkov/retail/internal/service/customer"
	ordersvc "github.com/vladislavdragonenkov/retail/internal/service/order"
	paymentsvc "github.com/vladislavdragonenkov/retail/internal/service/payment"
	productsvc "github.com/vladislavdragonenkov/retail/internal/service/product"
	reportingsvc "github.com/vladislavdragonenkov/retail/internal/service/reporting"
	"github.com/vladislavdragonenkov/retail/internal/storage"
)

// OrderLifecycleTestSuite тестирует полный жизненный цикл заказа: от
// регистрации клиента и товаров до оплаты, отчётов и возврата.
type OrderLifecycleTestSuite struct {
	suite.Suite
	customers *customersvc.Service
	products  *productsvc.Service
	orders    *ordersvc.Service
	payments  *paymentsvc.Service
	reports   *reportingsvc.Service
}

func (suite *OrderLifecycleTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // Уменьшаем шум в тестах
	logger := baseLogger.WithField("component", "integration-test")

	client := memory.NewClient()
	customerRepo := storage.NewCustomerRepository(client)
	productRepo := storage.NewProductRepository(client)
	orderRepo := storage.NewOrderRepository(client)
	paymentRepo := storage.NewPaymentRepository(client)
	reportingRepo := storage.NewReportingRepository(client)

	suite.customers = customersvc.NewService(customerRepo, logger)
	suite.products = productsvc.NewService(productRepo, logger)
	suite.orders = ordersvc.NewService(orderRepo, productRepo, customerRepo, logger)
	suite.payments = paymentsvc.NewService(paymentRepo, orderRepo, logger)
	suite.reports = reportingsvc.NewService(reportingRepo)
}

func (suite *OrderLifecycleTestSuite) TestSuccessfulOrderLifecycle() {
	ctx := context.Background()

	// 1. Регистрируем клиента и товары
	customer, err := suite.customers.Create(ctx, "Anna", "anna@example.com", "+7900", "Kazan")
	require.NoError(suite.T(), err)

	laptop, err := suite.products.Add(ctx, "Laptop Pro", "laptop-pro", 1999.0, 5, "electronics")
	require.NoError(suite.T(), err)
	mouse, err := suite.products.Add(ctx, "Wireless Mouse", "mouse-wireless", 49.0, 20, "electronics")
	require.NoError(suite.T(), err)

	// 2. Создаём заказ
	order, err := suite.orders.Create(ctx, customer.ID, []domain.OrderLine{
		{ProductID: laptop.ID, Quantity: 1},
		{ProductID: mouse.ID, Quantity: 2},
	})
	require.NoError(suite.T(), err)
	suite.Equal(domain.OrderStatusPlaced, order.Status)
	suite.Equal(2097.0, order.TotalAmount)

	// Остатки списаны
	gotLaptop, err := suite.products.Get(ctx, laptop.ID)
	require.NoError(suite.T(), err)
	suite.Equal(int64(4), gotLaptop.Stock)
	gotMouse, err := suite.products.Get(ctx, mouse.ID)
	require.NoError(suite.T(), err)
	suite.Equal(int64(18), gotMouse.Stock)

	// 3. Создаём ожидающий платёж и обрабатываем его
	pending, err := suite.payments.CreatePending(ctx, order.ID, order.TotalAmount)
	require.NoError(suite.T(), err)
	suite.Equal(domain.PaymentStatusPending, pending.Status)

	result, err := suite.payments.Process(ctx, order.ID, domain.PaymentMethodCard)
	require.NoError(suite.T(), err)
	suite.Equal(domain.PaymentStatusPaid, result.Payment.Status)
	suite.Equal(domain.OrderStatusCompleted, result.Order.Status)

	// 4. Составное представление отражает итоговое состояние
	details, err := suite.orders.Details(ctx, order.ID)
	require.NoError(suite.T(), err)
	suite.Equal(domain.OrderStatusCompleted, details.Order.Status)
	suite.Equal(customer.Email, details.Customer.Email)
	suite.Len(details.Items, 2)
}

func (suite *OrderLifecycleTestSuite) TestCancelRestoresStock() {
	ctx := context.Background()

	customer, err := suite.customers.Create(ctx, "Boris", "boris@example.com", "", "")
	require.NoError(suite.T(), err)
	product, err := suite.products.Add(ctx, "Chair", "chair-01", 120.0, 5, "furniture")
	require.NoError(suite.T(), err)

	order, err := suite.orders.Create(ctx, customer.ID, []domain.OrderLine{
		{ProductID: product.ID, Quantity: 2},
	})
	require.NoError(suite.T(), err)

	cancelled, err := suite.orders.Cancel(ctx, order.ID)
	require.NoError(suite.T(), err)
	suite.Equal(domain.OrderStatusCancelled, cancelled.Status)

	restocked, err := suite.products.Get(ctx, product.ID)
	require.NoError(suite.T(), err)
	suite.Equal(int64(5), restocked.Stock)

	// Отменённый заказ нельзя ни оплатить, ни завершить
	_, err = suite.payments.Process(ctx, order.ID, domain.PaymentMethodCash)
	suite.ErrorIs(err, domain.ErrPaymentOrderNotPlaced)
	_, err = suite.orders.Complete(ctx, order.ID)
	suite.ErrorIs(err, domain.ErrOrderInvalidTransition)
}

func (suite *OrderLifecycleTestSuite) TestProcessWithoutPendingPaymentKeepsOrderPlaced() {
	ctx := context.Background()

	customer, err := suite.customers.Create(ctx, "Vera", "vera@example.com", "", "")
	require.NoError(suite.T(), err)
	product, err := suite.products.Add(ctx, "Desk", "desk-01", 300.0, 3, "furniture")
	require.NoError(suite.T(), err)

	order, err := suite.orders.Create(ctx, customer.ID, []domain.OrderLine{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(suite.T(), err)

	// Создание заказа платёжную запись не создаёт
	_, err = suite.payments.Process(ctx, order.ID, domain.PaymentMethodUPI)
	suite.ErrorIs(err, domain.ErrPaymentNotFound)

	got, err := suite.orders.Details(ctx, order.ID)
	require.NoError(suite.T(), err)
	suite.Equal(domain.OrderStatusPlaced, got.Order.Status)
}

func (suite *OrderLifecycleTestSuite) TestRefundLeavesOrderAndStockAlone() {
	ctx := context.Background()

	customer, err := suite.customers.Create(ctx, "Oleg", "oleg@example.com", "", "")
	require.NoError(suite.T(), err)
	product, err := suite.products.Add(ctx, "Lamp", "lamp-01", 45.0, 10, "")
	require.NoError(suite.T(), err)

	order, err := suite.orders.Create(ctx, customer.ID, []domain.OrderLine{
		{ProductID: product.ID, Quantity: 3},
	})
	require.NoError(suite.T(), err)

	_, err = suite.payments.CreatePending(ctx, order.ID, order.TotalAmount)
	require.NoError(suite.T(), err)
	_, err = suite.payments.Process(ctx, order.ID, domain.PaymentMethodCash)
	require.NoError(suite.T(), err)

	refunded, err := suite.payments.Refund(ctx, order.ID)
	require.NoError(suite.T(), err)
	suite.Equal(domain.PaymentStatusRefunded, refunded.Status)

	// Возврат платежа не трогает ни заказ, ни остатки
	details, err := suite.orders.Details(ctx, order.ID)
	require.NoError(suite.T(), err)
	suite.Equal(domain.OrderStatusCompleted, details.Order.Status)

	got, err := suite.products.Get(ctx, product.ID)
	require.NoError(suite.T(), err)
	suite.Equal(int64(7), got.Stock)
}

func (suite *OrderLifecycleTestSuite) TestReportsOverLifecycle() {
	ctx := context.Background()

	customer, err := suite.customers.Create(ctx, "Dina", "dina@example.com", "", "")
	require.NoError(suite.T(), err)
	p1, err := suite.products.Add(ctx, "Pen", "pen-01", 2.0, 100, "stationery")
	require.NoError(suite.T(), err)
	p2, err := suite.products.Add(ctx, "Notebook", "note-01", 5.0, 100, "stationery")
	require.NoError(suite.T(), err)

	// Три заказа: p1 суммарно 5 штук, p2 суммарно 9
	orders := [][]domain.OrderLine{
		{{ProductID: p1.ID, Quantity: 5}},
		{{ProductID: p2.ID, Quantity: 4}},
		{{ProductID: p2.ID, Quantity: 5}},
	}
	for _, lines := range orders {
		_, err := suite.orders.Create(ctx, customer.ID, lines)
		require.NoError(suite.T(), err)
	}

	top, err := suite.reports.TopSellingProducts(ctx, 1)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), top, 1)
	suite.Equal(p2.ID, top[0].ProductID)
	suite.Equal(int64(9), top[0].QuantitySold)

	counts, err := suite.reports.OrderCountPerCustomer(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), counts, 1)
	suite.Equal(int64(3), counts[0].OrderCount)

	active, err := suite.reports.CustomersWithMultipleOrders(ctx, 2)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), active, 1)
	suite.Equal(customer.ID, active[0].CustomerID)
}

func (suite *OrderLifecycleTestSuite) TestCustomerWithOrdersCannotBeDeleted() {
	ctx := context.Background()

	customer, err := suite.customers.Create(ctx, "Egor", "egor@example.com", "", "")
	require.NoError(suite.T(), err)
	product, err := suite.products.Add(ctx, "Mug", "mug-01", 8.0, 10, "")
	require.NoError(suite.T(), err)

	_, err = suite.orders.Create(ctx, customer.ID, []domain.OrderLine{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(suite.T(), err)

	_, err = suite.customers.Delete(ctx, customer.ID)
	suite.ErrorIs(err, domain.ErrCustomerHasOrders)
}

func TestOrderLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(OrderLifecycleTestSuite))
}
