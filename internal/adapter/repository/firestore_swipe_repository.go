package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"playsift/internal/domain/entity"
	"playsift/internal/domain/repository"
	"playsift/pkg/errors"
	"playsift/pkg/logger"
)

type firestoreSwipeRepository struct {
	client *firestore.Client
}

func NewFirestoreSwipeRepository(client *firestore.Client) repository.SwipeRepository {
	return &firestoreSwipeRepository{client: client}
}

// swipeDocID is the conflict key: one document per (user, game) pair.
func swipeDocID(userID, gameID string) string {
	return fmt.Sprintf("%s_%s", userID, gameID)
}

func (r *firestoreSwipeRepository) Upsert(ctx context.Context, swipe *entity.Swipe) error {
	swipe.ID = swipeDocID(swipe.UserID, swipe.GameID)
	swipe.CreatedAt = time.Now()

	_, err := r.client.Collection("swipes").Doc(swipe.ID).Set(ctx, swipe)
	if err != nil {
		return errors.Internal("Failed to save swipe", err)
	}

	return nil
}

func (r *firestoreSwipeRepository) Delete(ctx context.Context, userID, gameID string) error {
	// Firestore deletes are no-ops on absent documents, which gives the
	// idempotent delete the workflow expects.
	_, err := r.client.Collection("swipes").Doc(swipeDocID(userID, gameID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete swipe", err)
	}

	return nil
}

func (r *firestoreSwipeRepository) ListSwipedGameIDs(ctx context.Context, userID string) ([]string, error) {
	docs, err := r.client.Collection("swipes").
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list swipes", err)
	}

	gameIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var swipe entity.Swipe
		if err := doc.DataTo(&swipe); err != nil {
			logger.Warn("Skipping unparseable swipe %s: %v", doc.Ref.ID, err)
			continue
		}
		gameIDs = append(gameIDs, swipe.GameID)
	}

	return gameIDs, nil
}

func (r *firestoreSwipeRepository) ListInterestedWithGames(ctx context.Context, userID string) ([]entity.SwipeWithGame, error) {
	docs, err := r.client.Collection("swipes").
		Where("userId", "==", userID).
		Where("decision", "==", string(entity.DecisionInterested)).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list interested swipes", err)
	}

	var swipes []entity.Swipe
	gameIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var swipe entity.Swipe
		if err := doc.DataTo(&swipe); err != nil {
			logger.Warn("Skipping unparseable swipe %s: %v", doc.Ref.ID, err)
			continue
		}
		swipes = append(swipes, swipe)
		gameIDs = append(gameIDs, swipe.GameID)
	}

	gameMap, err := batchGetGames(ctx, r.client, gameIDs)
	if err != nil {
		return nil, err
	}

	result := make([]entity.SwipeWithGame, 0, len(swipes))
	for _, swipe := range swipes {
		game, ok := gameMap[swipe.GameID]
		if !ok {
			// Catalog entry was removed from under the swipe; drop it
			// from the read model rather than failing the whole list.
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

// batchGetGames fetches games by id in chunks, Firestore caps GetAll batches.
func batchGetGames(ctx context.Context, client *firestore.Client, gameIDs []string) (map[string]*entity.Game, error) {
	gameMap := make(map[string]*entity.Game, len(gameIDs))

	for i := 0; i < len(gameIDs); i += 30 {
		end := i + 30
		if end > len(gameIDs) {
			end = len(gameIDs)
		}

		batch := gameIDs[i:end]
		refs := make([]*firestore.DocumentRef, len(batch))
		for j, id := range batch {
			refs[j] = client.Collection("games").Doc(id)
		}

		docs, err := client.GetAll(ctx, refs)
		if err != nil {
			return nil, errors.Internal("Failed to fetch games", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var game entity.Game
			if err := doc.DataTo(&game); err != nil {
				logger.Warn("Skipping unparseable game %s: %v", doc.Ref.ID, err)
				continue
			}
			gameMap[doc.Ref.ID] = &game
		}
	}

	return gameMap, nil
}
