package cli

import (
	"github.com/spf13/cobra"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Операции над клиентами",
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Зарегистрировать клиента",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		city, _ := cmd.Flags().GetString("city")

		created, err := deps.Customers.Create(cmd.Context(), name, email, phone, city)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Обновить телефон и/или город клиента",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt64("customer-id")

		// Неуказанный флаг означает "поле не трогать", в отличие от
		// явно переданного пустого значения.
		var phone, city *string
		if cmd.Flags().Changed("phone") {
			v, _ := cmd.Flags().GetString("phone")
			phone = &v
		}
		if cmd.Flags().Changed("city") {
			v, _ := cmd.Flags().GetString("city")
			city = &v
		}

		updated, err := deps.Customers.Update(cmd.Context(), id, phone, city)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Удалить клиента без заказов",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt64("customer-id")

		deleted, err := deps.Customers.Delete(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(deleted)
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список клиентов",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		customers, err := deps.Customers.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		return printJSON(customers)
	},
}

var customerSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Поиск клиентов по email и/или городу",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		city, _ := cmd.Flags().GetString("city")

		customers, err := deps.Customers.Search(cmd.Context(), email, city)
		if err != nil {
			return err
		}
		return printJSON(customers)
	},
}

func init() {
	customerAddCmd.Flags().String("name", "", "имя клиента")
	customerAddCmd.Flags().String("email", "", "email клиента (уникален)")
	customerAddCmd.Flags().String("phone", "", "телефон")
	customerAddCmd.Flags().String("city", "", "город")
	_ = customerAddCmd.MarkFlagRequired("name")
	_ = customerAddCmd.MarkFlagRequired("email")

	customerUpdateCmd.Flags().Int64("customer-id", 0, "идентификатор клиента")
	customerUpdateCmd.Flags().String("phone", "", "новый телефон")
	customerUpdateCmd.Flags().String("city", "", "новый город")
	_ = customerUpdateCmd.MarkFlagRequired("customer-id")

	customerDeleteCmd.Flags().Int64("customer-id", 0, "идентификатор клиента")
	_ = customerDeleteCmd.MarkFlagRequired("customer-id")

	customerListCmd.Flags().Int("limit", 100, "максимум записей")

	customerSearchCmd.Flags().String("email", "", "точное совпадение email")
	customerSearchCmd.Flags().String("city", "", "точное совпадение города")

	customerCmd.AddCommand(customerAddCmd, customerUpdateCmd, customerDeleteCmd, customerListCmd, customerSearchCmd)
}
