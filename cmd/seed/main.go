package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"employees-srv/config"
	configPostgre "employees-srv/config/postgre"
	configRedis "employees-srv/config/redis"
	"employees-srv/internal/employee"
	"employees-srv/internal/employee/repository"
	employeePostgre "employees-srv/internal/employee/repository/postgre"
	employeeRedis "employees-srv/internal/employee/repository/redis"
	employeeUsecase "employees-srv/internal/employee/usecase"
	"employees-srv/pkg/log"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the seed command.
func newRootCmd() *cobra.Command {
	var (
		count      int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the employees table with fake employees",
		Long: `Inserts employees with random job titles into the employees table
and drops the cached employee count.`,
		Example: `  # Seed the default 102 employees
  seed

  # Seed 500 employees using an explicit config file
  seed --count 500 --config ./config/employees-config.yaml`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), cmd.OutOrStdout(), configPath, count)
		},
	}

	cmd.Flags().IntVar(&count, "count", employee.DefaultSeedCount, "Number of employees to create")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the config file (default: search ./config, . and /etc/employees/)")

	return cmd
}

func runSeed(ctx context.Context, out io.Writer, configPath string, count int) error {
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer configPostgre.Disconnect(ctx, db)

	// Seeding works without Redis; the cached count then simply expires.
	var cache repository.CacheRepository
	if rdb, err := configRedis.Connect(ctx, cfg.Redis); err != nil {
		logger.Warnf(ctx, "Redis unavailable, cached employee count not invalidated: %v", err)
	} else {
		defer configRedis.Disconnect()
		cache = employeeRedis.New(rdb, logger)
	}

	uc := employeeUsecase.New(logger, employeePostgre.New(db, logger), cache, employeeUsecase.Config{
		PerPage:             cfg.Pagination.PerPage,
		Orphans:             cfg.Pagination.Orphans,
		AllowEmptyFirstPage: cfg.Pagination.AllowEmptyFirstPage,
		CountCacheTTL:       cfg.Pagination.CountCacheTTL,
	})

	o, err := uc.Seed(ctx, employee.SeedInput{Count: count})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created %d employees\n", o.Created)
	return nil
}
