package router

import (
	"github.com/labstack/echo/v4"

	"playsift/internal/adapter/api/handler"
	"playsift/internal/adapter/api/middleware"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	group := e.Group("/api/dashboard")
	group.Use(authMiddleware.Authenticate)

	group.GET("", dashboardHandler.Get)
}
