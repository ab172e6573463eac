// Command migrate creates or updates the database schema and exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"sellerhub/config"
	logs "sellerhub/internal/infra/log"
	"sellerhub/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	DB         *gorm.DB
	Logger     *slog.Logger
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(runMigrate),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start migration", slog.Any("error", err))
		os.Exit(1)
	}

	signal := <-app.Wait()
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to stop migration", slog.Any("error", err))
	}
	os.Exit(signal.ExitCode)
}

func runMigrate(lc fx.Lifecycle, params migrateParams) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := postgres.Migrate(context.Background(), params.DB); err != nil {
					params.Logger.Error("Schema migration failed", slog.Any("error", err))
					_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

					return
				}
				params.Logger.Info("Schema migration complete")
				_ = params.Shutdowner.Shutdown()
			}()

			return nil
		},
	})
}
