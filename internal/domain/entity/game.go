package entity

import (
	"time"
)

type CoopType string

const (
	CoopSolo   CoopType = "solo"
	CoopLocal  CoopType = "local_coop"
	CoopOnline CoopType = "online_coop"
	CoopBoth   CoopType = "both"
)

// Game is a catalog entry. Games are written only by the ingestion tool
// (upsert keyed on the RAWG id) and are read-only to the session workflow.
type Game struct {
	ID          string    `json:"id" firestore:"id"`
	RawgID      int64     `json:"rawg_id" firestore:"rawgId"`
	RawgSlug    string    `json:"rawg_slug,omitempty" firestore:"rawgSlug,omitempty"`
	Title       string    `json:"title" firestore:"title"`
	CoverURL    string    `json:"cover_url,omitempty" firestore:"coverUrl,omitempty"`
	Summary     string    `json:"summary" firestore:"summary"`
	Description string    `json:"description" firestore:"description"`
	MinutesMin  *int      `json:"minutes_min" firestore:"minutesMin"`
	MinutesMax  *int      `json:"minutes_max" firestore:"minutesMax"`
	Platforms   []string  `json:"platforms" firestore:"platforms"`
	Genres      []string  `json:"genres" firestore:"genres"`
	CoopType    CoopType  `json:"coop_type" firestore:"coopType"`
	Rating      float64   `json:"rating" firestore:"rating"`
	Metacritic  *int      `json:"metacritic" firestore:"metacritic"`
	Released    string    `json:"released,omitempty" firestore:"released,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
