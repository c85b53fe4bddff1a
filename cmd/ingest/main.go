package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"playsift/internal/adapter/repository"
	"playsift/internal/domain/entity"
	"playsift/internal/infrastructure/rawg"
	"playsift/internal/infrastructure/storage"
	"playsift/pkg/config"
)

// Catalog ingestion: fetches well-rated games from RAWG and upserts them into
// the games collection. Idempotent — upserts are keyed on the RAWG id, so the
// tool is safe to run repeatedly, and incremental — start small with -count
// and scale up. Runs independently from the API server.
func main() {
	count := flag.Int("count", 50, "number of games to ingest")
	dryRun := flag.Bool("dry", false, "fetch and transform without writing to the store")
	noDetails := flag.Bool("no-details", false, "skip per-game detail requests (shorter descriptions)")
	mirrorCovers := flag.Bool("mirror-covers", false, "copy cover art into the storage bucket")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.RawgAPIKey == "" {
		log.Fatal("RAWG_API_KEY is required")
	}
	if cfg.FirebaseProject == "" {
		log.Fatal("FIREBASE_PROJECT_ID is required")
	}
	if *mirrorCovers && cfg.StorageBucket == "" {
		log.Fatal("STORAGE_BUCKET is required when -mirror-covers is set")
	}

	ctx := context.Background()

	opt, err := credentialsOption(cfg)
	if err != nil {
		log.Fatalf("Failed to resolve Firebase credentials: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	gameRepo := repository.NewFirestoreGameRepository(firestoreClient)
	rawgClient := rawg.NewClient(cfg.RawgAPIKey)

	var storageClient *storage.CloudStorageClient
	if *mirrorCovers {
		storageClient, err = storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opt)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
	}

	log.Printf("Ingesting up to %d games (dry=%v, details=%v, mirror=%v)", *count, *dryRun, !*noDetails, *mirrorCovers)

	listed := fetchListed(ctx, rawgClient, *count)
	if len(listed) == 0 {
		log.Print("No games to process")
		return
	}

	games := transformAll(ctx, rawgClient, listed, !*noDetails)
	games = dedupeByRawgID(games)
	log.Printf("Transformed %d games (%d after dedupe)", len(listed), len(games))

	if sample, err := json.MarshalIndent(games[0], "", "  "); err == nil {
		log.Printf("Sample transformed game:\n%s", sample)
	}

	if *dryRun {
		log.Printf("[dry run] Would have upserted %d games", len(games))
		return
	}

	upserted := 0
	for _, game := range games {
		if storageClient != nil && game.CoverURL != "" {
			mirrored, err := storageClient.MirrorCover(ctx, game.CoverURL)
			if err != nil {
				log.Printf("Warning: could not mirror cover for %q: %v", game.Title, err)
			} else {
				game.CoverURL = mirrored
			}
		}

		if err := gameRepo.Upsert(ctx, game); err != nil {
			log.Printf("Warning: failed to upsert %q: %v", game.Title, err)
			continue
		}
		upserted++
	}

	log.Printf("Ingestion complete: upserted %d of %d games", upserted, len(games))
}

// fetchListed pages through the RAWG list endpoint until the target count is
// reached or the upstream runs out, skipping games without cover images.
func fetchListed(ctx context.Context, client *rawg.Client, count int) []rawg.ListedGame {
	var listed []rawg.ListedGame
	page := 1

	for len(listed) < count {
		remaining := count - len(listed)
		pageSize := rawg.PageSize
		if remaining < pageSize {
			pageSize = remaining
		}

		log.Printf("Fetching page %d (%d games)...", page, pageSize)

		results, err := client.ListGames(ctx, page, pageSize)
		if err != nil {
			log.Printf("Error fetching page %d: %v", page, err)
			break
		}
		if len(results) == 0 {
			log.Print("No more games available from RAWG")
			break
		}

		withImages := 0
		for _, game := range results {
			if game.BackgroundImage == "" {
				continue
			}
			listed = append(listed, game)
			withImages++
		}
		log.Printf("  Got %d games, %d with images", len(results), withImages)

		page++
	}

	if len(listed) > count {
		listed = listed[:count]
	}
	return listed
}

func transformAll(ctx context.Context, client *rawg.Client, listed []rawg.ListedGame, fetchDetails bool) []*entity.Game {
	games := make([]*entity.Game, 0, len(listed))

	for i, game := range listed {
		var details *rawg.GameDetails
		if fetchDetails {
			log.Printf("Fetching details for %q (%d/%d)", game.Name, i+1, len(listed))
			d, err := client.GameDetails(ctx, game.ID)
			if err != nil {
				log.Printf("Warning: could not fetch details for %q: %v", game.Name, err)
			} else {
				details = d
			}
		}

		games = append(games, rawg.Transform(game, details))
	}

	return games
}

// dedupeByRawgID drops repeated catalog entries — RAWG pages can overlap.
func dedupeByRawgID(games []*entity.Game) []*entity.Game {
	seen := make(map[int64]struct{}, len(games))
	unique := make([]*entity.Game, 0, len(games))

	for _, game := range games {
		if _, dup := seen[game.RawgID]; dup {
			continue
		}
		seen[game.RawgID] = struct{}{}
		unique = append(unique, game)
	}

	return unique
}

func credentialsOption(cfg *config.Config) (option.ClientOption, error) {
	if cfg.ServiceAccountJSON != "" {
		return option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)), nil
	}

	path := cfg.ServiceAccountPath
	if path == "" {
		path = "./service-account.json"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("service account file does not exist: %s", path)
	}

	return option.WithCredentialsFile(path), nil
}
