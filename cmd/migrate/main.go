// Command migrate manages the database schema and demo data.
//
// Usage:
//
//	migrate [migrate|rollback|seed]
//
// The default action creates or updates the tables. rollback drops them.
// seed loads the demo accounts, companies and transfers; reruns leave
// existing rows untouched.
package main

import (
	"context"
	"flag"
	"log/slog"

	"ledger/config"
	"ledger/internal/domain/service"
	"ledger/internal/infra/auth"
	logs "ledger/internal/infra/log"
	"ledger/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type runParams struct {
	fx.In
	fx.Shutdowner

	DB     *gorm.DB
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			auth.NewBcryptHasher,
		),
		fx.Invoke(run),
	).Run()
}

func run(ctx context.Context, params runParams) error {
	action := flag.Arg(0)
	if action == "" {
		action = "migrate"
	}

	var err error
	switch action {
	case "migrate":
		err = postgres.Migrate(params.DB)
	case "rollback":
		err = postgres.Rollback(params.DB)
	case "seed":
		err = postgres.Seed(ctx, params.DB, params.Hasher, params.Logger)
	default:
		err = errors.Errorf("unknown action %q", action)
	}

	if err != nil {
		params.Logger.Error("Migration action failed",
			slog.String("action", action), slog.Any("error", err))

		return err
	}

	params.Logger.Info("Migration action completed", slog.String("action", action))

	return params.Shutdown()
}
