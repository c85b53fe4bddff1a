package usecase

import (
	"context"
	"sync"

	"playsift/internal/domain/entity"
	"playsift/internal/domain/repository"
	"playsift/pkg/logger"
)

type DashboardUseCase struct {
	sessionRepo repository.SessionRepository
	swipeRepo   repository.SwipeRepository
}

func NewDashboardUseCase(sessionRepo repository.SessionRepository, swipeRepo repository.SwipeRepository) *DashboardUseCase {
	return &DashboardUseCase{
		sessionRepo: sessionRepo,
		swipeRepo:   swipeRepo,
	}
}

type Dashboard struct {
	ActiveSession   *entity.SessionWithGame  `json:"activeSession"`
	InterestedGames []*entity.Game           `json:"interestedGames"`
	PastSessions    []entity.SessionWithGame `json:"pastSessions"`
}

// Get assembles the dashboard read model from three independent queries run
// concurrently. Aggregation is lenient: a failing branch degrades to
// null/empty and is logged, it never fails the dashboard as a whole.
func (uc *DashboardUseCase) Get(ctx context.Context, userID string) *Dashboard {
	var (
		active     *entity.SessionWithGame
		interested []entity.SwipeWithGame
		past       []entity.SessionWithGame
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		session, err := uc.sessionRepo.GetLatestActiveWithGame(ctx, userID)
		if err != nil {
			logger.Error("Dashboard: failed to fetch active session for user %s: %v", userID, err)
			return
		}
		active = session
	}()

	go func() {
		defer wg.Done()
		swipes, err := uc.swipeRepo.ListInterestedWithGames(ctx, userID)
		if err != nil {
			logger.Error("Dashboard: failed to fetch interested games for user %s: %v", userID, err)
			return
		}
		interested = swipes
	}()

	go func() {
		defer wg.Done()
		sessions, err := uc.sessionRepo.ListStartedWithGames(ctx, userID)
		if err != nil {
			logger.Error("Dashboard: failed to fetch past sessions for user %s: %v", userID, err)
			return
		}
		past = sessions
	}()

	wg.Wait()

	games := make([]*entity.Game, 0, len(interested))
	for _, swipe := range interested {
		games = append(games, swipe.Game)
	}

	if past == nil {
		past = []entity.SessionWithGame{}
	}

	return &Dashboard{
		ActiveSession:   active,
		InterestedGames: games,
		PastSessions:    past,
	}
}
