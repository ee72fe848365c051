package http

import (
	"employees-srv/internal/employee"
	"employees-srv/internal/middleware"
	"employees-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho employee HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      employee.UseCase
	perPage int
}

// New - Factory. perPage is the page size used when a request sets no limit.
func New(l log.Logger, uc employee.UseCase, perPage int) Handler {
	if perPage < 1 {
		perPage = employee.DefaultPerPage
	}
	return &handler{l: l, uc: uc, perPage: perPage}
}
