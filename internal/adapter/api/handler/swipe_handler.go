package handler

import (
	"github.com/labstack/echo/v4"

	"playsift/internal/domain/entity"
	"playsift/internal/usecase"
	"playsift/pkg/errors"
	"playsift/pkg/response"
)

type SwipeHandler struct {
	swipeUseCase *usecase.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *usecase.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

type swipeRequest struct {
	GameID   string `json:"gameId" validate:"required"`
	Decision string `json:"decision" validate:"required,oneof=ignore interested"`
}

func (h *SwipeHandler) RecordSwipe(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req swipeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	swipe, err := h.swipeUseCase.RecordSwipe(c.Request().Context(), userID, req.GameID, entity.SwipeDecision(req.Decision))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, swipe)
}

func (h *SwipeHandler) DeleteSwipe(c echo.Context) error {
	userID := c.Get("uid").(string)
	gameID := c.Param("gameId")

	if gameID == "" {
		return response.Error(c, errors.BadRequest("Game ID is required", nil))
	}

	if err := h.swipeUseCase.DeleteSwipe(c.Request().Context(), userID, gameID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Swipe removed",
	})
}
