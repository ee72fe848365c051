package repository

import (
	"context"
	"time"

	"employees-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CountEmployees(ctx context.Context) (int, error)
	ListEmployees(ctx context.Context, opt ListEmployeesOptions) ([]model.Employee, error)
	DetailEmployee(ctx context.Context, id int64) (model.Employee, error)
	CreateEmployees(ctx context.Context, opts []CreateEmployeeOptions) (int, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetEmployeeCount(ctx context.Context) (int, error)
	SaveEmployeeCount(ctx context.Context, count int, ttl time.Duration) error
	InvalidateEmployeeCount(ctx context.Context) error
}
