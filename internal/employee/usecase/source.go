package usecase

import (
	"context"
	"errors"
	"fmt"

	"employees-srv/internal/employee/repository"
	"employees-srv/internal/model"
	"employees-srv/pkg/paginator"
)

// employeeSource exposes the employees table as a paginator.ObjectList.
// The count is served from the cache when possible.
type employeeSource struct {
	uc *implUseCase
}

var _ paginator.ObjectList[model.Employee] = employeeSource{}

func (s employeeSource) Count(ctx context.Context) (int, error) {
	uc := s.uc
	if uc.cacheEnabled() {
		n, err := uc.cache.GetEmployeeCount(ctx)
		if err == nil {
			return n, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "employee.usecase.employeeSource.Count: cache get failed: %v", err)
		}
	}

	n, err := uc.repo.CountEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}

	if uc.cacheEnabled() {
		if err := uc.cache.SaveEmployeeCount(ctx, n, uc.cfg.CountCacheTTL); err != nil {
			uc.l.Warnf(ctx, "employee.usecase.employeeSource.Count: cache save failed: %v", err)
		}
	}
	return n, nil
}

func (s employeeSource) Slice(ctx context.Context, offset, limit int) ([]model.Employee, error) {
	employees, err := s.uc.repo.ListEmployees(ctx, repository.ListEmployeesOptions{
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("Slice: %w", err)
	}
	return employees, nil
}

func (uc *implUseCase) cacheEnabled() bool {
	return uc.cache != nil && uc.cfg.CountCacheTTL > 0
}

func (uc *implUseCase) newPaginator(ctx context.Context, limit int) (*paginator.Paginator[model.Employee], error) {
	perPage := uc.cfg.PerPage
	if limit > 0 {
		perPage = limit
	}
	return paginator.New[model.Employee](ctx, employeeSource{uc: uc}, perPage,
		paginator.WithOrphans(uc.cfg.Orphans),
		paginator.WithAllowEmptyFirstPage(uc.cfg.AllowEmptyFirstPage),
	)
}
