package router

import (
	"github.com/labstack/echo/v4"

	"playsift/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupRecommendationRouter(e, authMiddleware)
	SetupSwipeRouter(e, authMiddleware)
	SetupSessionRouter(e, authMiddleware)
	SetupDashboardRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
