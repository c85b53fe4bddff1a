package repository

import (
	"context"

	"playsift/internal/domain/entity"
)

type GameRepository interface {
	// Upsert inserts or replaces a catalog entry keyed on its RAWG id.
	Upsert(ctx context.Context, game *entity.Game) error

	GetByID(ctx context.Context, id string) (*entity.Game, error)

	// FirstExcluding returns the game with the earliest catalog-insertion
	// timestamp whose id is not in excludedIDs, or (nil, nil) when the
	// catalog is exhausted.
	FirstExcluding(ctx context.Context, excludedIDs []string) (*entity.Game, error)
}
