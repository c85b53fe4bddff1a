package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"playsift/internal/domain/entity"
	"playsift/internal/domain/repository"
	"playsift/pkg/errors"
)

type firestoreGameRepository struct {
	client *firestore.Client
}

func NewFirestoreGameRepository(client *firestore.Client) repository.GameRepository {
	return &firestoreGameRepository{
		client: client,
	}
}

// Upsert writes the game under a document id derived from its RAWG id, so
// re-ingesting the same game replaces the catalog entry instead of
// duplicating it. The original insertion timestamp is preserved on update.
func (r *firestoreGameRepository) Upsert(ctx context.Context, game *entity.Game) error {
	if game.ID == "" {
		game.ID = fmt.Sprintf("rawg-%d", game.RawgID)
	}

	now := time.Now()
	game.UpdatedAt = now
	game.CreatedAt = now

	existing, err := r.client.Collection("games").Doc(game.ID).Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return errors.Internal("Failed to check existing game", err)
	}
	if existing != nil && existing.Exists() {
		var prior entity.Game
		if err := existing.DataTo(&prior); err == nil && !prior.CreatedAt.IsZero() {
			game.CreatedAt = prior.CreatedAt
		}
	}

	if _, err := r.client.Collection("games").Doc(game.ID).Set(ctx, game); err != nil {
		return errors.Internal("Failed to save game", err)
	}

	return nil
}

func (r *firestoreGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	doc, err := r.client.Collection("games").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Game", err)
		}
		return nil, errors.Internal("Failed to get game", err)
	}

	var game entity.Game
	if err := doc.DataTo(&game); err != nil {
		return nil, errors.Internal("Failed to parse game data", err)
	}

	return &game, nil
}

// FirstExcluding walks the catalog in insertion order and returns the first
// game not present in excludedIDs. Insertion order is the sole ordering key,
// so the result is deterministic for a fixed catalog and exclusion set.
func (r *firestoreGameRepository) FirstExcluding(ctx context.Context, excludedIDs []string) (*entity.Game, error) {
	excluded := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	iter := r.client.Collection("games").OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate games", err)
		}

		if _, swiped := excluded[doc.Ref.ID]; swiped {
			continue
		}

		var game entity.Game
		if err := doc.DataTo(&game); err != nil {
			return nil, errors.Internal("Failed to parse game data", err)
		}
		return &game, nil
	}
}
