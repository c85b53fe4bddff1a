package usecase

import (
	"context"
	"time"

	"playsift/internal/domain/entity"
	"playsift/internal/domain/repository"
	"playsift/pkg/logger"
)

// SessionUseCase owns the session lifecycle: planned on creation, active once
// started, ended once ended, with rating fields attached post-hoc. Transitions
// are deliberately unguarded — starting an active session or ending a planned
// one simply overwrites the corresponding fields. Each transition lives in a
// single method so guards can be added here without touching callers.
type SessionUseCase struct {
	sessionRepo repository.SessionRepository
	swipeRepo   repository.SwipeRepository
}

func NewSessionUseCase(sessionRepo repository.SessionRepository, swipeRepo repository.SwipeRepository) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo: sessionRepo,
		swipeRepo:   swipeRepo,
	}
}

type RatingInput struct {
	Finished       *bool
	RatingFun      *int
	RatingFriction *int
	WouldPlayAgain *bool
}

// Create records interest in the game and inserts a planned session.
// The two writes are independent: a failure after the swipe upsert leaves an
// interested swipe with no session, which the workflow accepts.
func (uc *SessionUseCase) Create(ctx context.Context, userID, gameID string) (string, error) {
	swipe := &entity.Swipe{
		UserID:   userID,
		GameID:   gameID,
		Decision: entity.DecisionInterested,
	}
	if err := uc.swipeRepo.Upsert(ctx, swipe); err != nil {
		return "", err
	}

	session := &entity.Session{
		UserID: userID,
		GameID: gameID,
		Status: entity.SessionPlanned,
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}

	logger.Info("Created session %s for game %s, user %s", session.ID, gameID, userID)
	return session.ID, nil
}

func (uc *SessionUseCase) GetByID(ctx context.Context, userID, sessionID string) (*entity.SessionWithGame, error) {
	return uc.sessionRepo.GetWithGame(ctx, userID, sessionID)
}

func (uc *SessionUseCase) Start(ctx context.Context, userID, sessionID string) (*entity.Session, error) {
	return uc.sessionRepo.UpdateFields(ctx, userID, sessionID, map[string]interface{}{
		"status":    string(entity.SessionActive),
		"startedAt": time.Now(),
	})
}

func (uc *SessionUseCase) End(ctx context.Context, userID, sessionID string) (*entity.Session, error) {
	return uc.sessionRepo.UpdateFields(ctx, userID, sessionID, map[string]interface{}{
		"status":  string(entity.SessionEnded),
		"endedAt": time.Now(),
	})
}

// Rate overwrites all four rating fields; absent fields are written as null.
// It never touches the session status.
func (uc *SessionUseCase) Rate(ctx context.Context, userID, sessionID string, input RatingInput) (*entity.Session, error) {
	return uc.sessionRepo.UpdateFields(ctx, userID, sessionID, map[string]interface{}{
		"finished":       input.Finished,
		"ratingFun":      input.RatingFun,
		"ratingFriction": input.RatingFriction,
		"wouldPlayAgain": input.WouldPlayAgain,
	})
}

func (uc *SessionUseCase) Delete(ctx context.Context, userID, sessionID string) error {
	return uc.sessionRepo.Delete(ctx, userID, sessionID)
}
