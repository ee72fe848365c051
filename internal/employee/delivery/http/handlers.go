package http

import (
	"employees-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const headerLink = "Link"

// @Summary List employees
// @Description Return one page of employees. A page that is not a number yields the first page, a page out of range the last one.
// @Tags Employee
// @Accept json
// @Produce json
// @Param page query string false "Page number (default 1)"
// @Param limit query int false "Employees per page (default 6, max 100)"
// @Success 200 {object} listEmployeesResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/employees [get]
func (h *handler) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEmployeesRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "employee.delivery.http.ListEmployees: processListEmployeesRequest failed: %v", err)
		response.BindError(c, err)
		return
	}

	o, err := h.uc.ListEmployees(ctx, req.toListInput())
	if err != nil {
		h.l.Errorf(ctx, "employee.delivery.http.ListEmployees: usecase ListEmployees failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header(headerLink, o.Page.EncodeToLink(c.Request.URL))
	response.OK(c, h.newListEmployeesResp(o))
}

// @Summary Browse employees
// @Description Return one page of employees. "last" names the last page; any page that does not exist is a 404.
// @Tags Employee
// @Accept json
// @Produce json
// @Param page query string false "Page number or \"last\" (default 1)"
// @Param limit query int false "Employees per page (default 6, max 100)"
// @Success 200 {object} listEmployeesResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/employees/browse [get]
func (h *handler) BrowseEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEmployeesRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "employee.delivery.http.BrowseEmployees: processListEmployeesRequest failed: %v", err)
		response.BindError(c, err)
		return
	}

	o, err := h.uc.BrowseEmployees(ctx, req.toBrowseInput())
	if err != nil {
		h.l.Warnf(ctx, "employee.delivery.http.BrowseEmployees: usecase BrowseEmployees failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header(headerLink, o.Page.EncodeToLink(c.Request.URL))
	response.OK(c, h.newListEmployeesResp(o))
}

// @Summary Get employee detail
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} employeeResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/employees/{id} [get]
func (h *handler) GetEmployee(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processGetEmployeeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "employee.delivery.http.GetEmployee: processGetEmployeeRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetEmployee(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "employee.delivery.http.GetEmployee: usecase GetEmployee failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEmployeeResp(o))
}

// @Summary Seed employees
// @Description Create employees with random job titles (102 when count is omitted)
// @Tags Internal
// @Accept json
// @Produce json
// @Param Authorization header string true "Internal key"
// @Param body body seedReq false "Seed request"
// @Success 200 {object} seedResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /internal/employees/seed [post]
func (h *handler) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSeedRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "employee.delivery.http.Seed: processSeedRequest failed: %v", err)
		response.BindError(c, err)
		return
	}

	o, err := h.uc.Seed(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "employee.delivery.http.Seed: usecase Seed failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, seedResp{Created: o.Created})
}
