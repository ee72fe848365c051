package usecase

import (
	"context"
	"fmt"

	"employees-srv/internal/employee"
	"employees-srv/internal/employee/repository"
)

// Seed creates input.Count employees with random job titles, or
// employee.DefaultSeedCount when no count is given.
func (uc *implUseCase) Seed(ctx context.Context, input employee.SeedInput) (employee.SeedOutput, error) {
	count := input.Count
	if count == 0 {
		count = employee.DefaultSeedCount
	}
	if count < 0 || count > employee.MaxSeedCount {
		return employee.SeedOutput{}, employee.ErrInvalidSeedCount
	}

	opts := make([]repository.CreateEmployeeOptions, count)
	for i := range opts {
		opts[i] = repository.CreateEmployeeOptions{Title: randomJobTitle()}
	}

	created, err := uc.repo.CreateEmployees(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "employee.usecase.Seed: repo.CreateEmployees failed: %v", err)
		return employee.SeedOutput{}, fmt.Errorf("Seed: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateEmployeeCount(ctx); err != nil {
			uc.l.Warnf(ctx, "employee.usecase.Seed: cache invalidate failed: %v", err)
		}
	}

	uc.l.Infof(ctx, "employee.usecase.Seed: created %d employees", created)
	return employee.SeedOutput{Created: created}, nil
}
