package router

import (
	"github.com/labstack/echo/v4"

	"playsift/internal/adapter/api/handler"
)

// SetupDevRouter registers development-only endpoints. Nothing is exposed
// outside the development environment.
func SetupDevRouter(e *echo.Echo, environment string) {
	if environment != "development" {
		return
	}

	devTokenHandler := handler.GetDevTokenHandler()

	e.GET("/_dev/token", devTokenHandler.GenerateToken)
}
