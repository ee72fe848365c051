package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"employees-srv/internal/employee/repository"
	"employees-srv/internal/model"
)

// CountEmployees - Tổng số employee
func (r *implRepository) CountEmployees(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countEmployeesQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountEmployees: %w", err)
	}
	return count, nil
}

// ListEmployees returns at most opt.Limit employees in id order, skipping the first opt.Offset.
func (r *implRepository) ListEmployees(ctx context.Context, opt repository.ListEmployeesOptions) ([]model.Employee, error) {
	rows, err := r.db.QueryContext(ctx, listEmployeesQuery, opt.Limit, opt.Offset)
	if err != nil {
		return nil, fmt.Errorf("ListEmployees: %w", err)
	}
	defer rows.Close()

	employees := make([]model.Employee, 0, opt.Limit)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Title, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListEmployees scan: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEmployees rows: %w", err)
	}

	return employees, nil
}

func (r *implRepository) DetailEmployee(ctx context.Context, id int64) (model.Employee, error) {
	var e model.Employee
	err := r.db.QueryRowContext(ctx, detailEmployeeQuery, id).Scan(&e.ID, &e.Title, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Employee{}, repository.ErrNotFound
		}
		return model.Employee{}, fmt.Errorf("DetailEmployee: %w", err)
	}
	return e, nil
}

// CreateEmployees inserts all rows in a single transaction and returns how many were created.
func (r *implRepository) CreateEmployees(ctx context.Context, opts []repository.CreateEmployeeOptions) (int, error) {
	if len(opts) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("CreateEmployees begin: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.l.Errorf(ctx, "employee.repository.postgre.CreateEmployees: rollback failed: %v", rbErr)
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertEmployeeQuery)
	if err != nil {
		return 0, fmt.Errorf("CreateEmployees prepare: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, opt := range opts {
		if _, err = stmt.ExecContext(ctx, opt.Title, now); err != nil {
			return 0, fmt.Errorf("CreateEmployees insert: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("CreateEmployees commit: %w", err)
	}
	return len(opts), nil
}
