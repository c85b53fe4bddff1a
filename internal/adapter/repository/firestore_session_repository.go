package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"playsift/internal/domain/entity"
	"playsift/internal/domain/repository"
	"playsift/pkg/errors"
	"playsift/pkg/logger"
)

type firestoreSessionRepository struct {
	client *firestore.Client
}

func NewFirestoreSessionRepository(client *firestore.Client) repository.SessionRepository {
	return &firestoreSessionRepository{client: client}
}

func (r *firestoreSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if session.ID == "" {
		session.ID = r.client.Collection("sessions").NewDoc().ID
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("sessions").Doc(session.ID).Set(ctx, session)
	if err != nil {
		return errors.Internal("Failed to create session", err)
	}

	return nil
}

// getOwned fetches a session and enforces row ownership. A missing session
// and one owned by another user produce the same NotFound error.
func (r *firestoreSessionRepository) getOwned(ctx context.Context, userID, sessionID string) (*entity.Session, error) {
	doc, err := r.client.Collection("sessions").Doc(sessionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Session", err)
		}
		return nil, errors.Internal("Failed to get session", err)
	}

	var session entity.Session
	if err := doc.DataTo(&session); err != nil {
		return nil, errors.Internal("Failed to parse session data", err)
	}

	if session.UserID != userID {
		return nil, errors.NotFound("Session", nil)
	}

	return &session, nil
}

func (r *firestoreSessionRepository) GetByID(ctx context.Context, userID, sessionID string) (*entity.Session, error) {
	return r.getOwned(ctx, userID, sessionID)
}

func (r *firestoreSessionRepository) GetWithGame(ctx context.Context, userID, sessionID string) (*entity.SessionWithGame, error) {
	session, err := r.getOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	return r.joinGame(ctx, session), nil
}

func (r *firestoreSessionRepository) UpdateFields(ctx context.Context, userID, sessionID string, updates map[string]interface{}) (*entity.Session, error) {
	if _, err := r.getOwned(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	fieldUpdates := make([]firestore.Update, 0, len(updates))
	for path, value := range updates {
		fieldUpdates = append(fieldUpdates, firestore.Update{Path: path, Value: value})
	}

	if _, err := r.client.Collection("sessions").Doc(sessionID).Update(ctx, fieldUpdates); err != nil {
		return nil, errors.Internal("Failed to update session", err)
	}

	return r.getOwned(ctx, userID, sessionID)
}

func (r *firestoreSessionRepository) Delete(ctx context.Context, userID, sessionID string) error {
	if _, err := r.getOwned(ctx, userID, sessionID); err != nil {
		return err
	}

	if _, err := r.client.Collection("sessions").Doc(sessionID).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete session", err)
	}

	return nil
}

func (r *firestoreSessionRepository) GetLatestActiveWithGame(ctx context.Context, userID string) (*entity.SessionWithGame, error) {
	iter := r.client.Collection("sessions").
		Where("userId", "==", userID).
		Where("status", "==", string(entity.SessionActive)).
		OrderBy("startedAt", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to query active session", err)
	}

	var session entity.Session
	if err := doc.DataTo(&session); err != nil {
		return nil, errors.Internal("Failed to parse session data", err)
	}

	return r.joinGame(ctx, &session), nil
}

// ListStartedWithGames relies on startedAt being absent until a session is
// started: ordering by startedAt returns started sessions only.
func (r *firestoreSessionRepository) ListStartedWithGames(ctx context.Context, userID string) ([]entity.SessionWithGame, error) {
	docs, err := r.client.Collection("sessions").
		Where("userId", "==", userID).
		OrderBy("startedAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list started sessions", err)
	}

	var sessions []entity.Session
	gameIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var session entity.Session
		if err := doc.DataTo(&session); err != nil {
			logger.Warn("Skipping unparseable session %s: %v", doc.Ref.ID, err)
			continue
		}
		sessions = append(sessions, session)
		gameIDs = append(gameIDs, session.GameID)
	}

	gameMap, err := batchGetGames(ctx, r.client, gameIDs)
	if err != nil {
		return nil, err
	}

	result := make([]entity.SessionWithGame, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, entity.SessionWithGame{
			Session: session,
			Game:    gameMap[session.GameID],
		})
	}

	return result, nil
}

func (r *firestoreSessionRepository) joinGame(ctx context.Context, session *entity.Session) *entity.SessionWithGame {
	withGame := &entity.SessionWithGame{Session: *session}

	doc, err := r.client.Collection("games").Doc(session.GameID).Get(ctx)
	if err != nil {
		logger.Warn("Session %s references missing game %s: %v", session.ID, session.GameID, err)
		return withGame
	}

	var game entity.Game
	if err := doc.DataTo(&game); err != nil {
		logger.Warn("Failed to parse game %s: %v", session.GameID, err)
		return withGame
	}

	withGame.Game = &game
	return withGame
}
