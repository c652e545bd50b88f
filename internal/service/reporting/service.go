// Package reporting отдаёт агрегатные отчёты. Бизнес-логики сверх передачи
// параметров здесь нет: вся агрегация делегируется Record Store.
package reporting

import (
	"context"
	"time"

	"github.com/vladislavdragonenkov/retail/internal/domain"
)

// Service — read-only фасад над агрегатными запросами.
type Service struct {
	reports domain.ReportingRepository
	// now подменяется в тестах для фиксации границ отчётного месяца.
	now func() time.Time
}

// NewService создаёт сервис отчётности.
func NewService(reports domain.ReportingRepository) *Service {
	return &Service{reports: reports, now: time.Now}
}

// TopSellingProducts возвращает topN товаров по суммарному проданному количеству.
func (s *Service) TopSellingProducts(ctx context.Context, topN int) ([]domain.ProductSales, error) {
	return s.reports.TopSellingProducts(ctx, topN)
}

// TotalRevenueLastMonth суммирует total_amount завершённых заказов
// за предыдущий календарный месяц.
func (s *Service) TotalRevenueLastMonth(ctx context.Context) (float64, error) {
	from, to := LastMonthWindow(s.now().UTC())
	return s.reports.TotalRevenue(ctx, from, to)
}

// OrderCountPerCustomer возвращает количество заказов по каждому клиенту.
func (s *Service) OrderCountPerCustomer(ctx context.Context) ([]domain.CustomerOrders, error) {
	return s.reports.OrderCountPerCustomer(ctx)
}

// CustomersWithMultipleOrders возвращает клиентов, у которых заказов
// строго больше minOrders.
func (s *Service) CustomersWithMultipleOrders(ctx context.Context, minOrders int) ([]domain.CustomerOrders, error) {
	return s.reports.CustomersWithMinOrders(ctx, minOrders)
}

// LastMonthWindow возвращает границы предыдущего календарного месяца:
// полночь первого дня и полночь последнего дня (обе включительно).
func LastMonthWindow(now time.Time) (from, to time.Time) {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to = firstOfThisMonth.AddDate(0, 0, -1)
	from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, to
}
