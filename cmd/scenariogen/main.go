package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/alexanderramin/scenariogen/internal/api"
	"github.com/alexanderramin/scenariogen/internal/cli"
	"github.com/alexanderramin/scenariogen/internal/config"
	"github.com/alexanderramin/scenariogen/internal/db"
	"github.com/alexanderramin/scenariogen/internal/engine"
	"github.com/alexanderramin/scenariogen/internal/llm"
	"github.com/alexanderramin/scenariogen/internal/logging"
	"github.com/alexanderramin/scenariogen/internal/repository"
	"github.com/alexanderramin/scenariogen/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging.Mode, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	cardRepo := repository.NewSQLiteCardRepo(database)
	turnRepo := repository.NewSQLiteTurnRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Without a model the interview still runs when the host supplies
	// generated text through `phase` commands or the HTTP API.
	var (
		gen   service.Generator
		model api.ModelChecker
	)
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(log)
		}
		client := llm.NewOpenAIClient(llmCfg, observer)
		gen = llm.NewTextGenerator(client)
		model = client
		log.Debug("llm enabled", zap.String("endpoint", llmCfg.Endpoint), zap.String("model", llmCfg.Model))
	}

	scenarios := service.NewScenarioService(
		sessionRepo, cardRepo, turnRepo, uow,
		engine.New(log.Named("engine")),
		gen,
		service.NewLogUseCaseObserver(log),
	)

	app := &cli.App{
		Scenarios: scenarios,
		Log:       log,
		HTTPAddr:  cfg.HTTP.Addr,
		Model:     model,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
