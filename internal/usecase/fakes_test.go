package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"playsift/internal/domain/entity"
	"playsift/pkg/errors"
)

// fakeStore is an in-memory stand-in for the Firestore repositories. It
// mirrors their contracts: swipes keyed on (user, game), catalog ordered by
// insertion time, session ownership reported as NotFound, field-level session
// patches.
type fakeStore struct {
	mu       sync.Mutex
	games    []*entity.Game
	swipes   map[string]*entity.Swipe
	sessions map[string]*entity.Session

	sessionSeq int
	clock      time.Time

	failSwipeUpsert   error
	failActive        error
	failInterested    error
	failStarted       error
	failSessionCreate error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		swipes:   make(map[string]*entity.Swipe),
		sessions: make(map[string]*entity.Session),
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *fakeStore) addGame(id, title string) *entity.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := &entity.Game{ID: id, Title: title, CreatedAt: s.tick()}
	s.games = append(s.games, game)
	return game
}

// GameRepository

func (s *fakeStore) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, game := range s.games {
		if game.ID == id {
			return game, nil
		}
	}
	return nil, errors.NotFound("Game", nil)
}

func (s *fakeStore) FirstExcluding(ctx context.Context, excludedIDs []string) (*entity.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	excluded := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	for _, game := range s.games {
		if _, skip := excluded[game.ID]; !skip {
			return game, nil
		}
	}
	return nil, nil
}

// gameRepo and swipeRepo views let fakeStore satisfy both interfaces even
// though each declares an Upsert with a different signature.

type fakeGameRepo struct{ *fakeStore }

func (r fakeGameRepo) Upsert(ctx context.Context, game *entity.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.games {
		if existing.ID == game.ID {
			game.CreatedAt = existing.CreatedAt
			r.games[i] = game
			return nil
		}
	}
	game.CreatedAt = r.tick()
	r.games = append(r.games, game)
	return nil
}

type fakeSwipeRepo struct{ *fakeStore }

func (r fakeSwipeRepo) Upsert(ctx context.Context, swipe *entity.Swipe) error {
	if r.failSwipeUpsert != nil {
		return r.failSwipeUpsert
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	swipe.ID = fmt.Sprintf("%s_%s", swipe.UserID, swipe.GameID)
	swipe.CreatedAt = r.tick()
	copied := *swipe
	r.swipes[swipe.ID] = &copied
	return nil
}

func (r fakeSwipeRepo) Delete(ctx context.Context, userID, gameID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.swipes, fmt.Sprintf("%s_%s", userID, gameID))
	return nil
}

func (r fakeSwipeRepo) ListSwipedGameIDs(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	for _, swipe := range r.swipes {
		if swipe.UserID == userID {
			ids = append(ids, swipe.GameID)
		}
	}
	return ids, nil
}

func (r fakeSwipeRepo) ListInterestedWithGames(ctx context.Context, userID string) ([]entity.SwipeWithGame, error) {
	if r.failInterested != nil {
		return nil, r.failInterested
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var interested []*entity.Swipe
	for _, swipe := range r.swipes {
		if swipe.UserID == userID && swipe.Decision == entity.DecisionInterested {
			interested = append(interested, swipe)
		}
	}
	sort.Slice(interested, func(i, j int) bool {
		return interested[i].CreatedAt.After(interested[j].CreatedAt)
	})

	var result []entity.SwipeWithGame
	for _, swipe := range interested {
		var game *entity.Game
		for _, g := range r.games {
			if g.ID == swipe.GameID {
				game = g
				break
			}
		}
		if game == nil {
			continue
		}
		result = append(result, entity.SwipeWithGame{
			ID:        swipe.ID,
			UserID:    swipe.UserID,
			GameID:    swipe.GameID,
			Decision:  swipe.Decision,
			Game:      game,
			CreatedAt: swipe.CreatedAt,
		})
	}
	return result, nil
}

type fakeSessionRepo struct{ *fakeStore }

func (r fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if r.failSessionCreate != nil {
		return r.failSessionCreate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessionSeq++
	session.ID = fmt.Sprintf("session-%d", r.sessionSeq)
	session.CreatedAt = r.tick()
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r fakeSessionRepo) getOwned(userID, sessionID string) (*entity.Session, error) {
	session, ok := r.sessions[sessionID]
	if !ok || session.UserID != userID {
		return nil, errors.NotFound("Session", nil)
	}
	return session, nil
}

func (r fakeSessionRepo) GetByID(ctx context.Context, userID, sessionID string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.getOwned(userID, sessionID)
	if err != nil {
		return nil, err
	}
	copied := *session
	return &copied, nil
}

func (r fakeSessionRepo) GetWithGame(ctx context.Context, userID, sessionID string) (*entity.SessionWithGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.getOwned(userID, sessionID)
	if err != nil {
		return nil, err
	}

	withGame := &entity.SessionWithGame{Session: *session}
	for _, g := range r.games {
		if g.ID == session.GameID {
			withGame.Game = g
			break
		}
	}
	return withGame, nil
}

func (r fakeSessionRepo) UpdateFields(ctx context.Context, userID, sessionID string, updates map[string]interface{}) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.getOwned(userID, sessionID)
	if err != nil {
		return nil, err
	}

	for path, value := range updates {
		switch path {
		case "status":
			session.Status = entity.SessionStatus(value.(string))
		case "startedAt":
			t := value.(time.Time)
			session.StartedAt = &t
		case "endedAt":
			t := value.(time.Time)
			session.EndedAt = &t
		case "finished":
			session.Finished, _ = value.(*bool)
		case "wouldPlayAgain":
			session.WouldPlayAgain, _ = value.(*bool)
		case "ratingFun":
			session.RatingFun, _ = value.(*int)
		case "ratingFriction":
			session.RatingFriction, _ = value.(*int)
		default:
			panic("unexpected update path " + path)
		}
	}

	copied := *session
	return &copied, nil
}

func (r fakeSessionRepo) Delete(ctx context.Context, userID, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.getOwned(userID, sessionID); err != nil {
		return err
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r fakeSessionRepo) GetLatestActiveWithGame(ctx context.Context, userID string) (*entity.SessionWithGame, error) {
	if r.failActive != nil {
		return nil, r.failActive
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *entity.Session
	for _, session := range r.sessions {
		if session.UserID != userID || session.Status != entity.SessionActive || session.StartedAt == nil {
			continue
		}
		if latest == nil || session.StartedAt.After(*latest.StartedAt) {
			latest = session
		}
	}
	if latest == nil {
		return nil, nil
	}

	withGame := &entity.SessionWithGame{Session: *latest}
	for _, g := range r.games {
		if g.ID == latest.GameID {
			withGame.Game = g
			break
		}
	}
	return withGame, nil
}

func (r fakeSessionRepo) ListStartedWithGames(ctx context.Context, userID string) ([]entity.SessionWithGame, error) {
	if r.failStarted != nil {
		return nil, r.failStarted
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var started []*entity.Session
	for _, session := range r.sessions {
		if session.UserID == userID && session.StartedAt != nil {
			started = append(started, session)
		}
	}
	sort.Slice(started, func(i, j int) bool {
		return started[i].StartedAt.After(*started[j].StartedAt)
	})

	var result []entity.SessionWithGame
	for _, session := range started {
		withGame := entity.SessionWithGame{Session: *session}
		for _, g := range r.games {
			if g.ID == session.GameID {
				withGame.Game = g
				break
			}
		}
		result = append(result, withGame)
	}
	return result, nil
}
