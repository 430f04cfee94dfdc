package main

import (
	"context"
	"os"

	"timeline-service/internal/api/cli"
	"timeline-service/internal/catalog"
	"timeline-service/internal/config"
	"timeline-service/internal/logger"
	"timeline-service/internal/repository/memory"
	svc "timeline-service/internal/service"
	"timeline-service/internal/service/events"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Interactive music catalog editor",
	Long: `Timeline is an in-memory music catalog editor.

It keeps a session-local list of musicians and bands with date ranges
and shows them either as a chronological timeline or as a sortable,
filterable table. Nothing is persisted: the catalog is reseeded on
every start.`,
	RunE:          runEditor,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yml", "path to the configuration file")
}

// runEditor запускает интерактивную сессию редактора
func runEditor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eventService, notifier, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}

	session := cli.NewSession(eventService, notifier, os.Stdin, cmd.OutOrStdout(), cfg.UI.DefaultView)
	defer session.Close()

	return session.Run(ctx)
}

// loadConfig читает конфигурацию и инициализирует логгер
func loadConfig() (*config.Config, error) {
	cfg, err := config.InitConfigOrDefault(configFile)
	if err != nil {
		return nil, err
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildService собирает компоненты (DI): Repository -> Seed -> Service
func buildService(ctx context.Context, cfg *config.Config) (svc.EventService, *events.Notifier, error) {
	eventRepository := memory.NewRepository()

	seedEvents, err := catalog.Load(cfg.Catalog.SeedFile)
	if err != nil {
		return nil, nil, err
	}

	if err := catalog.Populate(ctx, eventRepository, seedEvents); err != nil {
		return nil, nil, err
	}

	logger.Info("catalog seeded", zap.Int("events", len(seedEvents)))

	notifier := events.NewNotifier()
	eventService := events.NewEventService(eventRepository, notifier)

	return eventService, notifier, nil
}
