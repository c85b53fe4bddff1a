package firebase

import (
	"context"
)

// MintDevToken issues a custom token for the given uid. Only wired up in the
// development environment, where there is no frontend to log in through.
func (a *AuthClient) MintDevToken(ctx context.Context, uid string) (string, error) {
	customToken, err := a.client.CustomToken(ctx, uid)
	if err != nil {
		return "", err
	}

	return customToken, nil
}
