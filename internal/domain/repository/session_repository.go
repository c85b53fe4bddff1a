package repository

import (
	"context"

	"playsift/internal/domain/entity"
)

// All session reads and mutations are scoped by the owning user. A session
// that does not exist and a session owned by someone else are reported with
// the same NotFound error.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	GetByID(ctx context.Context, userID, sessionID string) (*entity.Session, error)

	GetWithGame(ctx context.Context, userID, sessionID string) (*entity.SessionWithGame, error)

	// UpdateFields applies a field-level patch and returns the updated
	// session. Fields not named in updates are left untouched.
	UpdateFields(ctx context.Context, userID, sessionID string, updates map[string]interface{}) (*entity.Session, error)

	Delete(ctx context.Context, userID, sessionID string) error

	// GetLatestActiveWithGame returns the most recently started session
	// with status active, or (nil, nil) when there is none.
	GetLatestActiveWithGame(ctx context.Context, userID string) (*entity.SessionWithGame, error)

	// ListStartedWithGames returns every session with a started timestamp,
	// newest first, joined to its game.
	ListStartedWithGames(ctx context.Context, userID string) ([]entity.SessionWithGame, error)
}
