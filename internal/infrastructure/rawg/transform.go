package rawg

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"playsift/internal/domain/entity"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

const summaryLimit = 500

// Transform maps a RAWG game onto the catalog schema: normalized platform
// labels, genre names, co-op classification from tags, and a playtime range
// estimated from the reported average (min = playtime, max = playtime * 1.5).
func Transform(game ListedGame, details *GameDetails) *entity.Game {
	description := longDescription(game, details)

	summary := description
	if len(summary) > summaryLimit {
		summary = summary[:summaryLimit]
	}

	var minutesMin, minutesMax *int
	if game.Playtime > 0 {
		min := game.Playtime * 60
		max := int(math.Round(float64(game.Playtime) * 60 * 1.5))
		minutesMin = &min
		minutesMax = &max
	}

	return &entity.Game{
		RawgID:      game.ID,
		RawgSlug:    game.Slug,
		Title:       game.Name,
		CoverURL:    game.BackgroundImage,
		Summary:     summary,
		Description: description,
		MinutesMin:  minutesMin,
		MinutesMax:  minutesMax,
		Platforms:   normalizePlatforms(game),
		Genres:      genreNames(game),
		CoopType:    coopTypeFromTags(game),
		Rating:      game.Rating,
		Metacritic:  game.Metacritic,
		Released:    game.Released,
	}
}

func longDescription(game ListedGame, details *GameDetails) string {
	if details != nil {
		if details.DescriptionRaw != "" {
			return details.DescriptionRaw
		}
		if details.Description != "" {
			return htmlTagPattern.ReplaceAllString(details.Description, "")
		}
	}
	return fmt.Sprintf("%s is a video game.", game.Name)
}

func normalizePlatforms(game ListedGame) []string {
	seen := make(map[string]struct{})
	var platforms []string

	for _, p := range game.Platforms {
		name := p.Platform.Name
		switch {
		case strings.Contains(name, "PlayStation"):
			name = "PS"
		case strings.Contains(name, "Xbox"):
			name = "Xbox"
		case strings.Contains(name, "Nintendo Switch"):
			name = "Switch"
		case strings.Contains(name, "PC"):
			name = "PC"
		case strings.Contains(name, "macOS"), strings.Contains(name, "Mac"):
			name = "Mac"
		case strings.Contains(name, "Linux"):
			name = "Linux"
		case strings.Contains(name, "iOS"):
			name = "iOS"
		case strings.Contains(name, "Android"):
			name = "Android"
		}
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		platforms = append(platforms, name)
	}

	return platforms
}

func genreNames(game ListedGame) []string {
	genres := make([]string, 0, len(game.Genres))
	for _, g := range game.Genres {
		genres = append(genres, g.Name)
	}
	return genres
}

func coopTypeFromTags(game ListedGame) entity.CoopType {
	tags := make(map[string]struct{}, len(game.Tags))
	for _, t := range game.Tags {
		tags[t.Slug] = struct{}{}
	}

	has := func(slug string) bool {
		_, ok := tags[slug]
		return ok
	}

	switch {
	case has("co-op") && has("local-co-op"):
		return entity.CoopBoth
	case has("local-co-op") || has("local-multiplayer"):
		return entity.CoopLocal
	case has("co-op") || has("online-co-op") || has("multiplayer"):
		return entity.CoopOnline
	default:
		return entity.CoopSolo
	}
}
