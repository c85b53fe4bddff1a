package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playsift/pkg/errors"
)

type stubVerifier struct {
	uid string
	err error
}

func (s *stubVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.uid, nil
}

func runAuth(t *testing.T, verifier TokenVerifier, authHeader string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	var uid string
	next := func(c echo.Context) error {
		reached = true
		uid, _ = c.Get("uid").(string)
		return c.NoContent(http.StatusOK)
	}

	mw := NewAuthMiddleware(verifier)
	require.NoError(t, mw.Authenticate(next)(c))
	return rec, reached, uid
}

func TestAuthenticateMissingHeader(t *testing.T) {
	rec, reached, _ := runAuth(t, &stubVerifier{uid: "u1"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "Missing or invalid authorization header")
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	rec, reached, _ := runAuth(t, &stubVerifier{uid: "u1"}, "Basic abc123")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthenticateRejectedToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.Unauthorized("Invalid or expired token", nil)}
	rec, reached, _ := runAuth(t, verifier, "Bearer expired-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthenticateSetsUID(t *testing.T) {
	rec, reached, uid := runAuth(t, &stubVerifier{uid: "firebase-uid-9"}, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, "firebase-uid-9", uid)
}
