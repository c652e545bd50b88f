package cli

import (
	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/retail/internal/domain"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Операции над платежами",
}

// Создание заказа не заводит платёжную запись: create-pending — явный
// второй шаг, без которого process откажет.
var paymentCreatePendingCmd = &cobra.Command{
	Use:   "create-pending",
	Short: "Создать ожидающий платёж для заказа",
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, _ := cmd.Flags().GetInt64("order-id")
		amount, _ := cmd.Flags().GetFloat64("amount")

		payment, err := deps.Payments.CreatePending(cmd.Context(), orderID, amount)
		if err != nil {
			return err
		}
		return printJSON(payment)
	},
}

var paymentProcessCmd = &cobra.Command{
	Use:   "process",
	Short: "Оплатить заказ указанным способом",
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, _ := cmd.Flags().GetInt64("order-id")
		method, _ := cmd.Flags().GetString("method")

		result, err := deps.Payments.Process(cmd.Context(), orderID, domain.PaymentMethod(method))
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var paymentRefundCmd = &cobra.Command{
	Use:   "refund",
	Short: "Вернуть платёж по заказу",
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, _ := cmd.Flags().GetInt64("order-id")

		refunded, err := deps.Payments.Refund(cmd.Context(), orderID)
		if err != nil {
			return err
		}
		return printJSON(refunded)
	},
}

func init() {
	paymentCreatePendingCmd.Flags().Int64("order-id", 0, "идентификатор заказа")
	paymentCreatePendingCmd.Flags().Float64("amount", 0, "сумма платежа")
	_ = paymentCreatePendingCmd.MarkFlagRequired("order-id")
	_ = paymentCreatePendingCmd.MarkFlagRequired("amount")

	paymentProcessCmd.Flags().Int64("order-id", 0, "идентификатор заказа")
	paymentProcessCmd.Flags().String("method", "", "способ оплаты: Cash|Card|UPI")
	_ = paymentProcessCmd.MarkFlagRequired("order-id")
	_ = paymentProcessCmd.MarkFlagRequired("method")

	paymentRefundCmd.Flags().Int64("order-id", 0, "идентификатор заказа")
	_ = paymentRefundCmd.MarkFlagRequired("order-id")

	paymentCmd.AddCommand(paymentCreatePendingCmd, paymentProcessCmd, paymentRefundCmd)
}
