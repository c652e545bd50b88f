// Package cli собирает дерево команд розничного инструмента.
// Команды парсят аргументы, вызывают сервисы и печатают результат в JSON;
// бизнес-правила живут уровнем ниже, в internal/service.
package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/retail/internal/app"
	"github.com/vladislavdragonenkov/retail/internal/version"
)

var (
	deps   *app.Dependencies
	logger *log.Entry
)

var rootCmd = &cobra.Command{
	Use:     "retail",
	Short:   "Управление клиентами, товарами, заказами, платежами и отчётами",
	Version: version.String(),

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}

		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		log.SetLevel(level)

		// Каждый запуск команды помечается собственным идентификатором,
		// чтобы связать записи лога одного вызова.
		logger = log.WithFields(log.Fields{
			"component":     "cli",
			"invocation_id": uuid.NewString(),
		})

		deps, err = app.NewDependencies(cmd.Context(), cfg, logger)
		return err
	},

	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return deps.Close()
	},
}

// Execute запускает корневую команду с переданным контекстом.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(paymentCmd)
	rootCmd.AddCommand(reportCmd)
}
