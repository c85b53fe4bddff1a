package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"playsift/internal/usecase"
	"playsift/pkg/response"
)

type RecommendationHandler struct {
	swipeUseCase *usecase.SwipeUseCase
}

func NewRecommendationHandler(swipeUseCase *usecase.SwipeUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		swipeUseCase: swipeUseCase,
	}
}

// Next returns the next unswiped game, or {"done":true} once the user has
// swiped through the whole catalog.
func (h *RecommendationHandler) Next(c echo.Context) error {
	userID := c.Get("uid").(string)

	rec, err := h.swipeUseCase.NextRecommendation(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	if rec.Done {
		return c.JSON(http.StatusOK, map[string]bool{"done": true})
	}

	return c.JSON(http.StatusOK, rec.Game)
}
