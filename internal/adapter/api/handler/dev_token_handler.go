package handler

import (
	"github.com/labstack/echo/v4"

	"playsift/internal/infrastructure/firebase"
	"playsift/pkg/errors"
	"playsift/pkg/response"
)

type DevTokenHandler struct {
	firebaseAuth *firebase.AuthClient
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(firebaseAuth *firebase.AuthClient) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
	}
}

func SetupDevTokenHandler(firebaseAuth *firebase.AuthClient) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

// GenerateToken mints a custom token for the uid given in the query string,
// so the API can be exercised locally without going through a frontend login.
func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		return response.Error(c, errors.BadRequest("uid query parameter is required", nil))
	}

	token, err := h.firebaseAuth.MintDevToken(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to mint dev token", err))
	}

	return response.Success(c, map[string]string{
		"uid":   uid,
		"token": token,
	})
}
