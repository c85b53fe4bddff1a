package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"playsift/internal/usecase"
	"playsift/pkg/errors"
	"playsift/pkg/response"
)

type SessionHandler struct {
	sessionUseCase *usecase.SessionUseCase
}

func NewSessionHandler(sessionUseCase *usecase.SessionUseCase) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
	}
}

type createSessionRequest struct {
	GameID string `json:"gameId" validate:"required"`
}

type ratingRequest struct {
	Finished       *bool `json:"finished"`
	RatingFun      *int  `json:"rating_fun" validate:"omitempty,min=1,max=5"`
	RatingFriction *int  `json:"rating_friction" validate:"omitempty,min=1,max=5"`
	WouldPlayAgain *bool `json:"would_play_again"`
}

func (h *SessionHandler) Create(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sessionID, err := h.sessionUseCase.Create(c.Request().Context(), userID, req.GameID)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"sessionId": sessionID,
	})
}

func (h *SessionHandler) Get(c echo.Context) error {
	userID := c.Get("uid").(string)
	sessionID := c.Param("id")

	session, err := h.sessionUseCase.GetByID(c.Request().Context(), userID, sessionID)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Start(c echo.Context) error {
	userID := c.Get("uid").(string)
	sessionID := c.Param("id")

	session, err := h.sessionUseCase.Start(c.Request().Context(), userID, sessionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, session)
}

func (h *SessionHandler) End(c echo.Context) error {
	userID := c.Get("uid").(string)
	sessionID := c.Param("id")

	session, err := h.sessionUseCase.End(c.Request().Context(), userID, sessionID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, session)
}

func (h *SessionHandler) Rate(c echo.Context) error {
	userID := c.Get("uid").(string)
	sessionID := c.Param("id")

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.sessionUseCase.Rate(c.Request().Context(), userID, sessionID, usecase.RatingInput{
		Finished:       req.Finished,
		RatingFun:      req.RatingFun,
		RatingFriction: req.RatingFriction,
		WouldPlayAgain: req.WouldPlayAgain,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, session)
}

func (h *SessionHandler) Delete(c echo.Context) error {
	userID := c.Get("uid").(string)
	sessionID := c.Param("id")

	if err := h.sessionUseCase.Delete(c.Request().Context(), userID, sessionID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Session deleted",
	})
}
