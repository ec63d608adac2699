package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"todolist/internal/adapter/cli"
	"todolist/internal/adapter/http/handlers"
	appservice "todolist/internal/app/service"
	"todolist/internal/config"
	"todolist/internal/core/store"
	"todolist/pkg/clock"
	"todolist/pkg/logging"
	"todolist/pkg/translator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	lang := flag.String("lang", cfg.AppLocale, "Interface language (ru | en).")
	logLevel := flag.String("log-level", "warn", "Log level (debug | info | warn | error).")
	noColor := flag.Bool("no-color", false, "Disable colored output.")
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageRu, translator.LanguageEn},
	})

	taskStore := store.New(
		store.WithClock(clock.RealClock{}),
		store.WithFormatter(clock.NewFormatter(*lang)),
		store.WithNamer(appservice.LocalizedNamer(*lang)),
	)
	repl := cli.New(appservice.NewTaskService(taskStore), os.Stdout, cli.Options{
		Lang:          *lang,
		GenerateCount: cfg.GenerateCount,
		NoColor:       *noColor || color.NoColor,
	})

	color.New(color.FgCyan, color.Bold).Printf("TODOIST %s\n", handlers.AppVersion())
	if err := repl.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Error("cli stopped", zap.Error(err))
		os.Exit(1)
	}
}
