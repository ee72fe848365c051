package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"employees-srv/internal/employee"
	"employees-srv/pkg/paginator"
)

// ListEmployees serves the requested page. A page that is not a number
// falls back to the first page and a page out of range to the last one.
func (uc *implUseCase) ListEmployees(ctx context.Context, input employee.ListEmployeesInput) (employee.ListEmployeesOutput, error) {
	p, err := uc.newPaginator(ctx, input.Limit)
	if err != nil {
		uc.l.Errorf(ctx, "employee.usecase.ListEmployees: newPaginator failed: %v", err)
		return employee.ListEmployeesOutput{}, fmt.Errorf("ListEmployees: %w", err)
	}

	page, err := p.Page(ctx, input.Page)
	switch {
	case errors.Is(err, paginator.ErrPageNotAnInteger):
		uc.l.Debugf(ctx, "employee.usecase.ListEmployees: page %q is not an integer, serving page 1", input.Page)
		page, err = p.GetPage(ctx, 1)
	case errors.Is(err, paginator.ErrEmptyPage):
		uc.l.Debugf(ctx, "employee.usecase.ListEmployees: page %q is out of range, serving page %d", input.Page, p.NumPages())
		page, err = p.GetPage(ctx, p.NumPages())
	}
	if err != nil {
		uc.l.Errorf(ctx, "employee.usecase.ListEmployees: page failed: %v", err)
		return employee.ListEmployeesOutput{}, fmt.Errorf("ListEmployees: %w", err)
	}

	return employee.ListEmployeesOutput{Page: page}, nil
}

// BrowseEmployees serves the requested page strictly. An empty page means
// the first page and PageLast the last one. Anything else that does not name
// a page is employee.ErrInvalidPage.
func (uc *implUseCase) BrowseEmployees(ctx context.Context, input employee.BrowseEmployeesInput) (employee.ListEmployeesOutput, error) {
	p, err := uc.newPaginator(ctx, input.Limit)
	if err != nil {
		uc.l.Errorf(ctx, "employee.usecase.BrowseEmployees: newPaginator failed: %v", err)
		return employee.ListEmployeesOutput{}, fmt.Errorf("BrowseEmployees: %w", err)
	}

	var raw any = strings.TrimSpace(input.Page)
	switch raw {
	case "":
		raw = paginator.DefaultPage
	case employee.PageLast:
		raw = p.NumPages()
	}

	page, err := p.Page(ctx, raw)
	if err != nil {
		var invalid *paginator.InvalidPageError
		if errors.As(err, &invalid) {
			uc.l.Debugf(ctx, "employee.usecase.BrowseEmployees: invalid page %q: %v", input.Page, err)
			return employee.ListEmployeesOutput{}, fmt.Errorf("BrowseEmployees: %w: %s", employee.ErrInvalidPage, invalid.Message)
		}
		uc.l.Errorf(ctx, "employee.usecase.BrowseEmployees: page failed: %v", err)
		return employee.ListEmployeesOutput{}, fmt.Errorf("BrowseEmployees: %w", err)
	}

	return employee.ListEmployeesOutput{Page: page}, nil
}
