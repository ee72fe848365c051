package usecase

import (
	"time"

	"employees-srv/internal/employee"
	"employees-srv/internal/employee/repository"
	"employees-srv/pkg/log"
)

// Config controls how employees are paginated.
type Config struct {
	PerPage             int
	Orphans             int
	AllowEmptyFirstPage bool
	// CountCacheTTL is how long the employee count stays cached. Zero disables the cache.
	CountCacheTTL time.Duration
}

type implUseCase struct {
	l     log.Logger
	repo  repository.PostgresRepository
	cache repository.CacheRepository
	cfg   Config
}

// New - Factory function. cache may be nil.
func New(l log.Logger, repo repository.PostgresRepository, cache repository.CacheRepository, cfg Config) employee.UseCase {
	if cfg.PerPage < 1 {
		cfg.PerPage = employee.DefaultPerPage
	}
	if cfg.Orphans < 0 {
		cfg.Orphans = 0
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}
