package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/retail/internal/domain"
	"github.com/vladislavdragonenkov/retail/internal/recordstore"
)

type reportingRepository struct {
	client recordstore.Client
}

// NewReportingRepository создаёт read-only компонент агрегатных отчётов.
// Вся агрегация выполняется на стороне Record Store, локально ничего не считается.
func NewReportingRepository(client recordstore.Client) domain.ReportingRepository {
	return &reportingRepository{client: client}
}

func (r *reportingRepository) TopSellingProducts(ctx context.Context, topN int) ([]domain.ProductSales, error) {
	rows, err := r.client.Aggregate(ctx, recordstore.AggregateQuery{
		Table:   "order_items",
		Func:    recordstore.AggSum,
		Column:  "quantity",
		GroupBy: "product_id",
		Desc:    true,
		Limit:   topN,
	})
	if err != nil {
		return nil, fmt.Errorf("top selling products: %w", err)
	}

	result := make([]domain.ProductSales, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.ProductSales{
			ProductID:    asInt64(row.Group),
			QuantitySold: int64(row.Value),
		})
	}
	return result, nil
}

func (r *reportingRepository) TotalRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	rows, err := r.client.Aggregate(ctx, recordstore.AggregateQuery{
		Table:  "orders",
		Func:   recordstore.AggSum,
		Column: "total_amount",
		Filters: []recordstore.Filter{
			recordstore.Eq("status", string(domain.OrderStatusCompleted)),
			{Column: "created_at", Op: recordstore.OpGte, Value: from},
			{Column: "created_at", Op: recordstore.OpLte, Value: to},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("total revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Value, nil
}

func (r *reportingRepository) OrderCountPerCustomer(ctx context.Context) ([]domain.CustomerOrders, error) {
	rows, err := r.client.Aggregate(ctx, recordstore.AggregateQuery{
		Table:   "orders",
		Func:    recordstore.AggCount,
		Column:  "order_id",
		GroupBy: "customer_id",
	})
	if err != nil {
		return nil, fmt.Errorf("order count per customer: %w", err)
	}
	return decodeCustomerOrders(rows), nil
}

func (r *reportingRepository) CustomersWithMinOrders(ctx context.Context, minOrders int) ([]domain.CustomerOrders, error) {
	rows, err := r.client.Aggregate(ctx, recordstore.AggregateQuery{
		Table:   "orders",
		Func:    recordstore.AggCount,
		Column:  "order_id",
		GroupBy: "customer_id",
		// Порог строгий: клиент попадает в отчёт, когда заказов больше minOrders.
		Having: &recordstore.Having{Op: recordstore.OpGt, Value: float64(minOrders)},
	})
	if err != nil {
		return nil, fmt.Errorf("customers with min orders: %w", err)
	}
	return decodeCustomerOrders(rows), nil
}

func decodeCustomerOrders(rows []recordstore.AggregateRow) []domain.CustomerOrders {
	result := make([]domain.CustomerOrders, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.CustomerOrders{
			CustomerID: asInt64(row.Group),
			OrderCount: int64(row.Value),
		})
	}
	return result
}

var _ domain.ReportingRepository = (*reportingRepository)(nil)
