package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"hostel-admin/internal/domain/user"
	"hostel-admin/internal/handler/dto/request"
	"hostel-admin/internal/handler/middleware"
	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/infra/migration"
	"hostel-admin/internal/infra/uow"
	"hostel-admin/internal/pkg/config"
	"hostel-admin/internal/pkg/errs"
	"hostel-admin/internal/usecase/commands"
)

const usage = `usage: migrate [flags] <command>

commands:
  up              apply every pending migration
  down            roll back every migration
  steps -n N      apply N migrations, or roll back when N is negative
  version         print the current version
  force -v V      mark V as applied without running it
  seed            create the first superadmin from SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD
`

func main() {
	n := flag.Int("n", 0, "number of steps for the steps command")
	v := flag.Int("v", -1, "version for the force command")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := run(flag.Arg(0), cfg, logger, *n, *v); err != nil {
		logger.Error("migrate failed", "command", flag.Arg(0), "error", err.Error())
		os.Exit(1)
	}
}

func run(command string, cfg config.Config, logger *slog.Logger, steps, version int) error {
	if command == "seed" {
		return seed(context.Background(), cfg, logger)
	}

	m, err := migration.New(cfg.DB.BuildMigrateURL(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Warn("failed to close migrator", "error", err.Error())
		}
	}()

	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "steps":
		if steps == 0 {
			return errs.New("steps needs -n")
		}
		return m.Steps(steps)
	case "version":
		current, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %t)\n", current, dirty)
		return nil
	case "force":
		if version < 0 {
			return errs.New("force needs -v")
		}
		return m.Force(version)
	default:
		return errs.Newf("unknown command %q", command)
	}
}

// seed creates the first superadmin. An existing account with that email is left alone.
func seed(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	email, pass := os.Getenv("SEED_ADMIN_EMAIL"), os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || pass == "" {
		return errs.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	users := commands.NewUserCommands(uow.NewPostgresUoW(pool))
	id, err := users.Create(ctx, request.CreateUserRequest{
		Email:    email,
		Password: pass,
		Role:     string(user.RoleSuperadmin),
		FullName: "Administrador",
	})
	if errs.Is(err, commands.ErrEmailTaken) {
		logger.Info("superadmin already exists", "email", email)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("superadmin created", "id", id.String(), "email", email)
	return nil
}
