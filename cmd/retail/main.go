package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/retail/internal/cli"
)

// setupLogger настраивает формат логирования; уровень задаётся конфигурацией.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
}

func main() {
	setupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil && !errors.Is(err, context.Canceled) {
		// Ошибки сервисов печатаются пользователю как сообщение,
		// прочие побочные эффекты команды остаются в силе.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
