package usecase

import (
	"context"

	"playsift/internal/domain/entity"
	"playsift/internal/domain/repository"
	"playsift/pkg/errors"
	"playsift/pkg/logger"
)

type SwipeUseCase struct {
	swipeRepo repository.SwipeRepository
	gameRepo  repository.GameRepository
}

func NewSwipeUseCase(swipeRepo repository.SwipeRepository, gameRepo repository.GameRepository) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo: swipeRepo,
		gameRepo:  gameRepo,
	}
}

// Recommendation carries the next unswiped game, or Done once the catalog is
// exhausted relative to the user's swipe set.
type Recommendation struct {
	Game *entity.Game
	Done bool
}

func (uc *SwipeUseCase) RecordSwipe(ctx context.Context, userID, gameID string, decision entity.SwipeDecision) (*entity.Swipe, error) {
	if decision != entity.DecisionIgnore && decision != entity.DecisionInterested {
		return nil, errors.BadRequest(`decision must be "ignore" or "interested"`, nil)
	}

	swipe := &entity.Swipe{
		UserID:   userID,
		GameID:   gameID,
		Decision: decision,
	}

	if err := uc.swipeRepo.Upsert(ctx, swipe); err != nil {
		return nil, err
	}

	logger.Debug("Recorded swipe %s on game %s for user %s", decision, gameID, userID)
	return swipe, nil
}

func (uc *SwipeUseCase) DeleteSwipe(ctx context.Context, userID, gameID string) error {
	return uc.swipeRepo.Delete(ctx, userID, gameID)
}

// NextRecommendation selects the unswiped game with the earliest catalog
// insertion timestamp. No ranking, no randomization: the result is fixed for
// a given swipe set and catalog snapshot.
func (uc *SwipeUseCase) NextRecommendation(ctx context.Context, userID string) (*Recommendation, error) {
	swipedIDs, err := uc.swipeRepo.ListSwipedGameIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	game, err := uc.gameRepo.FirstExcluding(ctx, swipedIDs)
	if err != nil {
		return nil, err
	}

	if game == nil {
		return &Recommendation{Done: true}, nil
	}

	return &Recommendation{Game: game}, nil
}
