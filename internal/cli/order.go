package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/retail/internal/domain"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Операции жизненного цикла заказа",
}

var orderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать заказ со списанием остатков",
	RunE: func(cmd *cobra.Command, args []string) error {
		customerID, _ := cmd.Flags().GetInt64("customer-id")
		rawItems, _ := cmd.Flags().GetStringArray("item")

		lines, err := parseOrderLines(rawItems)
		if err != nil {
			return err
		}

		created, err := deps.Orders.Create(cmd.Context(), customerID, lines)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var orderShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать заказ с клиентом и позициями",
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, _ := cmd.Flags().GetInt64("order-id")

		details, err := deps.Orders.Details(cmd.Context(), orderID)
		if err != nil {
			return err
		}
		return printJSON(details)
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заказов клиента",
	RunE: func(cmd *cobra.Command, args []string) error {
		customerID, _ := cmd.Flags().GetInt64("customer-id")

		orders, err := deps.Orders.ListByCustomer(cmd.Context(), customerID)
		if err != nil {
			return err
		}
		return printJSON(orders)
	},
}

var orderCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Отменить заказ и вернуть остатки",
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, _ := cmd.Flags().GetInt64("order-id")

		cancelled, err := deps.Orders.Cancel(cmd.Context(), orderID)
		if err != nil {
			return err
		}
		return printJSON(cancelled)
	},
}

var orderCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Завершить заказ без проверки оплаты",
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, _ := cmd.Flags().GetInt64("order-id")

		completed, err := deps.Orders.Complete(cmd.Context(), orderID)
		if err != nil {
			return err
		}
		return printJSON(completed)
	},
}

// parseOrderLines разбирает повторяемые значения вида "product_id:qty".
func parseOrderLines(raw []string) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, 0, len(raw))
	for _, item := range raw {
		parts := strings.Split(item, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid item format, expected product_id:qty: %s", item)
		}
		productID, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id in item %q: %w", item, err)
		}
		quantity, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in item %q: %w", item, err)
		}
		lines = append(lines, domain.OrderLine{ProductID: productID, Quantity: quantity})
	}
	return lines, nil
}

func init() {
	orderCreateCmd.Flags().Int64("customer-id", 0, "идентификатор клиента")
	orderCreateCmd.Flags().StringArray("item", nil, "позиция заказа product_id:qty (повторяемый)")
	_ = orderCreateCmd.MarkFlagRequired("customer-id")
	_ = orderCreateCmd.MarkFlagRequired("item")

	orderShowCmd.Flags().Int64("order-id", 0, "идентификатор заказа")
	_ = orderShowCmd.MarkFlagRequired("order-id")

	orderListCmd.Flags().Int64("customer-id", 0, "идентификатор клиента")
	_ = orderListCmd.MarkFlagRequired("customer-id")

	orderCancelCmd.Flags().Int64("order-id", 0, "идентификатор заказа")
	_ = orderCancelCmd.MarkFlagRequired("order-id")

	orderCompleteCmd.Flags().Int64("order-id", 0, "идентификатор заказа")
	_ = orderCompleteCmd.MarkFlagRequired("order-id")

	orderCmd.AddCommand(orderCreateCmd, orderShowCmd, orderListCmd, orderCancelCmd, orderCompleteCmd)
}
