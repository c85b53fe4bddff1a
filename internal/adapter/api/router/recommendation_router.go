package router

import (
	"github.com/labstack/echo/v4"

	"playsift/internal/adapter/api/handler"
	"playsift/internal/adapter/api/middleware"
)

func SetupRecommendationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	recommendationHandler := handler.GetRecommendationHandler()

	group := e.Group("/api/recommendation")
	group.Use(authMiddleware.Authenticate)

	group.GET("/next", recommendationHandler.Next)
}
