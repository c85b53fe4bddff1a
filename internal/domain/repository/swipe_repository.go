package repository

import (
	"context"

	"playsift/internal/domain/entity"
)

type SwipeRepository interface {
	// Upsert inserts or replaces the swipe for its (user, game) pair.
	Upsert(ctx context.Context, swipe *entity.Swipe) error

	// Delete removes the swipe for (userID, gameID). Deleting an absent
	// swipe is not an error.
	Delete(ctx context.Context, userID, gameID string) error

	// ListSwipedGameIDs returns the ids of every game the user has swiped
	// on, regardless of decision.
	ListSwipedGameIDs(ctx context.Context, userID string) ([]string, error)

	// ListInterestedWithGames returns the user's interested swipes joined
	// to their games, newest swipe first.
	ListInterestedWithGames(ctx context.Context, userID string) ([]entity.SwipeWithGame, error)
}
