package httpserver

import (
	"context"

	"employees-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.internalKey)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	ctx := context.Background()
	if err := srv.setupEmployeeDomain(ctx, srv.gin.Group(""), mw); err != nil {
		return err
	}
	if srv.internalKey == "" {
		srv.l.Warnf(ctx, "internal.internal_key is empty, internal routes will reject every request")
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(mw.Logger())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
