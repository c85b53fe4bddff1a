package router

import (
	"github.com/labstack/echo/v4"

	"playsift/internal/adapter/api/handler"
	"playsift/internal/adapter/api/middleware"
)

func SetupSwipeRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	swipeHandler := handler.GetSwipeHandler()

	group := e.Group("/api/swipes")
	group.Use(authMiddleware.Authenticate)

	group.POST("", swipeHandler.RecordSwipe)           // POST /api/swipes - record a decision
	group.DELETE("/:gameId", swipeHandler.DeleteSwipe) // DELETE /api/swipes/:gameId - unsave a game
}
