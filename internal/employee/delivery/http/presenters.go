package http

import (
	"employees-srv/internal/employee"
	"employees-srv/internal/model"
	"employees-srv/pkg/paginator"
	"employees-srv/pkg/response"
)

type listEmployeesReq struct {
	Page  string
	Limit int
}

func (r listEmployeesReq) toListInput() employee.ListEmployeesInput {
	return employee.ListEmployeesInput{
		Page:  r.Page,
		Limit: r.Limit,
	}
}

func (r listEmployeesReq) toBrowseInput() employee.BrowseEmployeesInput {
	return employee.BrowseEmployeesInput{
		Page:  r.Page,
		Limit: r.Limit,
	}
}

type seedReq struct {
	Count int `json:"count" binding:"gte=0"`
}

func (r seedReq) toInput() employee.SeedInput {
	return employee.SeedInput{Count: r.Count}
}

type employeeResp struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listEmployeesResp struct {
	Items      []employeeResp              `json:"items"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
	Navigation paginator.Navigation        `json:"navigation"`
}

type seedResp struct {
	Created int `json:"created"`
}

func newEmployeeResp(e model.Employee) employeeResp {
	return employeeResp{
		ID:        e.ID,
		Title:     e.Title,
		CreatedAt: response.DateTime(e.CreatedAt),
	}
}

func (h *handler) newListEmployeesResp(o employee.ListEmployeesOutput) listEmployeesResp {
	items := make([]employeeResp, 0, o.Page.Len())
	for _, e := range o.Page.Elements {
		items = append(items, newEmployeeResp(e))
	}

	return listEmployeesResp{
		Items:      items,
		Pagination: o.Page.ToResponse(),
		Navigation: o.Page.Navigation(),
	}
}
