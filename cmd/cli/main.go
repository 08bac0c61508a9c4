package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/foodbridge-ke/pickup-scheduler/cmd/cli/commands"
	"github.com/foodbridge-ke/pickup-scheduler/internal/config"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/memory"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/postgres"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/quota"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Pickup Scheduler CLI - Manage volunteer availability",
		Long:  `A CLI tool for managing volunteer availability profiles, blackout periods, and candidate pickup checks.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (test, prod, etc.)")

	rootCmd.AddCommand(commands.ValidateProfileCmd(appRef()))
	rootCmd.AddCommand(commands.SaveProfileCmd(appRef()))
	rootCmd.AddCommand(commands.CheckCmd(appRef()))
	rootCmd.AddCommand(commands.UnavailabilityCmd(appRef()))
	rootCmd.AddCommand(commands.UpcomingCmd(appRef()))
	rootCmd.AddCommand(commands.MigrateCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared context; it is populated by initApp before any
// RunE fires
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, stores, and the quota counter
func initApp() error {
	app = appRef()
	app.Ctx = context.Background()

	var err error
	app.Logger, err = logging.InitLogger(envOrDefault())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", envOrDefault()))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	if err := initStore(); err != nil {
		return err
	}

	if app.Cfg.Redis != nil {
		rdb := redis.NewClient(&redis.Options{
			Addr:     app.Cfg.Redis.Addr,
			Password: app.Cfg.Redis.Password,
			DB:       app.Cfg.Redis.DB,
		})
		app.Quota = quota.NewCounter(rdb, time.Duration(app.Cfg.QuotaTTLHours)*time.Hour)
		app.Logger.Debug("Quota counter connected", zap.String("addr", app.Cfg.Redis.Addr))
	}

	return nil
}

// initStore connects to Postgres when configured, otherwise falls back to
// the in-memory store for dry runs
func initStore() error {
	if app.Cfg.DatabaseURL == "" {
		app.Logger.Warn("No database configured, using in-memory store (nothing will persist)")
		app.Store = memory.NewStore()
		return nil
	}

	pg, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Postgres = pg
	app.Store = pg
	app.Logger.Debug("Database connected")
	return nil
}

func envOrDefault() string {
	if env == "" {
		return "dev"
	}
	return env
}
