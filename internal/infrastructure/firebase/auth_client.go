package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient adapts the hosted identity provider. Tokens are re-verified with
// the provider on every call; nothing is cached locally.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyToken validates a bearer token and returns the user id it carries.
func (a *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := a.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}
