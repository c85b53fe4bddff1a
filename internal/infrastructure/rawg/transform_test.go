package rawg

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playsift/internal/domain/entity"
)

func listedGameFromJSON(t *testing.T, raw string) ListedGame {
	t.Helper()
	var game ListedGame
	require.NoError(t, json.Unmarshal([]byte(raw), &game))
	return game
}

func TestTransformPlaytimeRange(t *testing.T) {
	game := listedGameFromJSON(t, `{"id":10,"slug":"hades","name":"Hades","playtime":21}`)

	out := Transform(game, nil)

	require.NotNil(t, out.MinutesMin)
	require.NotNil(t, out.MinutesMax)
	assert.Equal(t, 1260, *out.MinutesMin)
	assert.Equal(t, 1890, *out.MinutesMax)
}

func TestTransformZeroPlaytimeLeavesRangeUnset(t *testing.T) {
	game := listedGameFromJSON(t, `{"id":10,"name":"Hades","playtime":0}`)

	out := Transform(game, nil)

	assert.Nil(t, out.MinutesMin)
	assert.Nil(t, out.MinutesMax)
}

func TestTransformDescriptionFallbacks(t *testing.T) {
	game := listedGameFromJSON(t, `{"id":10,"name":"Hades"}`)

	out := Transform(game, &GameDetails{DescriptionRaw: "A roguelike dungeon crawler."})
	assert.Equal(t, "A roguelike dungeon crawler.", out.Description)

	out = Transform(game, &GameDetails{Description: "<p>A <b>roguelike</b> dungeon crawler.</p>"})
	assert.Equal(t, "A roguelike dungeon crawler.", out.Description)

	out = Transform(game, nil)
	assert.Equal(t, "Hades is a video game.", out.Description)
}

func TestTransformSummaryTruncation(t *testing.T) {
	long := strings.Repeat("a", 900)
	game := listedGameFromJSON(t, `{"id":10,"name":"Hades"}`)

	out := Transform(game, &GameDetails{DescriptionRaw: long})

	assert.Len(t, out.Summary, 500)
	assert.Len(t, out.Description, 900)
}

func TestNormalizePlatformsDedupes(t *testing.T) {
	game := listedGameFromJSON(t, `{
		"id": 10,
		"name": "Hades",
		"platforms": [
			{"platform": {"name": "PlayStation 4"}},
			{"platform": {"name": "PlayStation 5"}},
			{"platform": {"name": "Xbox Series S/X"}},
			{"platform": {"name": "Nintendo Switch"}},
			{"platform": {"name": "PC"}},
			{"platform": {"name": "macOS"}}
		]
	}`)

	assert.Equal(t, []string{"PS", "Xbox", "Switch", "PC", "Mac"}, normalizePlatforms(game))
}

func TestCoopTypeFromTags(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want entity.CoopType
	}{
		{"both", `{"tags":[{"slug":"co-op"},{"slug":"local-co-op"}]}`, entity.CoopBoth},
		{"local", `{"tags":[{"slug":"local-multiplayer"}]}`, entity.CoopLocal},
		{"online", `{"tags":[{"slug":"multiplayer"}]}`, entity.CoopOnline},
		{"solo", `{"tags":[{"slug":"singleplayer"}]}`, entity.CoopSolo},
		{"no tags", `{}`, entity.CoopSolo},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, coopTypeFromTags(listedGameFromJSON(t, tc.raw)))
		})
	}
}
