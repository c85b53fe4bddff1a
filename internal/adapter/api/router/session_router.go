package router

import (
	"github.com/labstack/echo/v4"

	"playsift/internal/adapter/api/handler"
	"playsift/internal/adapter/api/middleware"
)

func SetupSessionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	sessionHandler := handler.GetSessionHandler()

	group := e.Group("/api/sessions")
	group.Use(authMiddleware.Authenticate)

	group.POST("", sessionHandler.Create)           // POST /api/sessions - plan a session
	group.GET("/:id", sessionHandler.Get)           // GET /api/sessions/:id - session with its game
	group.PATCH("/:id/start", sessionHandler.Start) // PATCH /api/sessions/:id/start
	group.PATCH("/:id/end", sessionHandler.End)     // PATCH /api/sessions/:id/end
	group.PATCH("/:id/rating", sessionHandler.Rate) // PATCH /api/sessions/:id/rating
	group.DELETE("/:id", sessionHandler.Delete)     // DELETE /api/sessions/:id
}
