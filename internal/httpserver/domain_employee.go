package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	employeeHTTP "employees-srv/internal/employee/delivery/http"
	employeePostgre "employees-srv/internal/employee/repository/postgre"
	employeeRedis "employees-srv/internal/employee/repository/redis"
	employeeUsecase "employees-srv/internal/employee/usecase"
	"employees-srv/internal/middleware"
)

func (srv HTTPServer) setupEmployeeDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := employeePostgre.New(srv.postgresDB, srv.l)
	cacheRepo := employeeRedis.New(srv.redisClient, srv.l)

	uc := employeeUsecase.New(srv.l, repo, cacheRepo, employeeUsecase.Config{
		PerPage:             srv.pagination.PerPage,
		Orphans:             srv.pagination.Orphans,
		AllowEmptyFirstPage: srv.pagination.AllowEmptyFirstPage,
		CountCacheTTL:       srv.pagination.CountCacheTTL,
	})

	handler := employeeHTTP.New(srv.l, uc, srv.pagination.PerPage)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Employee domain registered")
	return nil
}
