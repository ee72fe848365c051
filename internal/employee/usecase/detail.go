package usecase

import (
	"context"
	"errors"
	"fmt"

	"employees-srv/internal/employee"
	"employees-srv/internal/employee/repository"
	"employees-srv/internal/model"
)

func (uc *implUseCase) GetEmployee(ctx context.Context, id int64) (model.Employee, error) {
	e, err := uc.repo.DetailEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Employee{}, employee.ErrEmployeeNotFound
		}
		uc.l.Errorf(ctx, "employee.usecase.GetEmployee: repo.DetailEmployee failed: %v", err)
		return model.Employee{}, fmt.Errorf("GetEmployee: %w", err)
	}
	return e, nil
}
