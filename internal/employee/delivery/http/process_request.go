package http

import (
	"errors"
	"io"
	"strconv"

	"employees-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListEmployeesRequest(c *gin.Context) (listEmployeesReq, error) {
	var q paginator.PaginateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return listEmployeesReq{}, err
	}
	q.Adjust(h.perPage)

	return listEmployeesReq{Page: q.Page, Limit: q.Limit}, nil
}

func (h *handler) processGetEmployeeRequest(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processSeedRequest(c *gin.Context) (seedReq, error) {
	var req seedReq
	// An empty body seeds the default number of employees.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
