package employee

import (
	"context"

	"employees-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListEmployees(ctx context.Context, input ListEmployeesInput) (ListEmployeesOutput, error)
	BrowseEmployees(ctx context.Context, input BrowseEmployeesInput) (ListEmployeesOutput, error)
	GetEmployee(ctx context.Context, id int64) (model.Employee, error)
	Seed(ctx context.Context, input SeedInput) (SeedOutput, error)
}
