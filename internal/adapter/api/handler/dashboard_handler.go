package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"playsift/internal/usecase"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// Get never fails once the caller is authenticated: sub-queries that error
// out degrade to empty fields inside the use case.
func (h *DashboardHandler) Get(c echo.Context) error {
	userID := c.Get("uid").(string)

	dashboard := h.dashboardUseCase.Get(c.Request().Context(), userID)

	return c.JSON(http.StatusOK, dashboard)
}
