package cli

import (
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Операции каталога товаров",
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить товар в каталог",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		sku, _ := cmd.Flags().GetString("sku")
		price, _ := cmd.Flags().GetFloat64("price")
		stock, _ := cmd.Flags().GetInt64("stock")
		category, _ := cmd.Flags().GetString("category")

		created, err := deps.Products.Add(cmd.Context(), name, sku, price, stock, category)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список товаров",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		category, _ := cmd.Flags().GetString("category")

		products, err := deps.Products.List(cmd.Context(), limit, category)
		if err != nil {
			return err
		}
		return printJSON(products)
	},
}

func init() {
	productAddCmd.Flags().String("name", "", "название товара")
	productAddCmd.Flags().String("sku", "", "артикул (уникален)")
	productAddCmd.Flags().Float64("price", 0, "цена за единицу")
	productAddCmd.Flags().Int64("stock", 0, "начальный остаток")
	productAddCmd.Flags().String("category", "", "категория")
	_ = productAddCmd.MarkFlagRequired("name")
	_ = productAddCmd.MarkFlagRequired("sku")
	_ = productAddCmd.MarkFlagRequired("price")

	productListCmd.Flags().Int("limit", 100, "максимум записей")
	productListCmd.Flags().String("category", "", "фильтр по категории")

	productCmd.AddCommand(productAddCmd, productListCmd)
}
