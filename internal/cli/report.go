package cli

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Агрегатные отчёты",
}

var reportTopProductsCmd = &cobra.Command{
	Use:   "top-products",
	Short: "Топ товаров по проданному количеству",
	RunE: func(cmd *cobra.Command, args []string) error {
		topN, _ := cmd.Flags().GetInt("top-n")

		rows, err := deps.Reports.TopSellingProducts(cmd.Context(), topN)
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

var reportRevenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Выручка по завершённым заказам за прошлый месяц",
	RunE: func(cmd *cobra.Command, args []string) error {
		revenue, err := deps.Reports.TotalRevenueLastMonth(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(map[string]float64{"total_revenue_last_month": revenue})
	},
}

var reportOrderCountCmd = &cobra.Command{
	Use:   "order-count",
	Short: "Количество заказов по клиентам",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := deps.Reports.OrderCountPerCustomer(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

var reportActiveCustomersCmd = &cobra.Command{
	Use:   "active-customers",
	Short: "Клиенты, у которых заказов больше порога",
	RunE: func(cmd *cobra.Command, args []string) error {
		minOrders, _ := cmd.Flags().GetInt("min-orders")

		rows, err := deps.Reports.CustomersWithMultipleOrders(cmd.Context(), minOrders)
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

func init() {
	reportTopProductsCmd.Flags().Int("top-n", 5, "размер топа")
	reportActiveCustomersCmd.Flags().Int("min-orders", 2, "строгий порог количества заказов")

	reportCmd.AddCommand(reportTopProductsCmd, reportRevenueCmd, reportOrderCountCmd, reportActiveCustomersCmd)
}
