package http

import (
	"employees-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/employees")
	{
		api.GET("", h.ListEmployees)
		api.GET("/browse", h.BrowseEmployees)
		api.GET("/:id", h.GetEmployee)
	}

	internal := r.Group("/internal/employees")
	internal.Use(mw.InternalAuth())
	{
		internal.POST("/seed", h.Seed)
	}
}
