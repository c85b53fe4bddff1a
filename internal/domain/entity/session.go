package entity

import (
	"time"
)

type SessionStatus string

const (
	SessionPlanned SessionStatus = "planned"
	SessionActive  SessionStatus = "active"
	SessionEnded   SessionStatus = "ended"
)

// Session is one planned or attempted play-through of a game by a user.
// StartedAt is only written when the session is started; queries ordered by
// startedAt therefore see started sessions only.
type Session struct {
	ID             string        `json:"id" firestore:"id"`
	UserID         string        `json:"user_id" firestore:"userId"`
	GameID         string        `json:"game_id" firestore:"gameId"`
	Status         SessionStatus `json:"status" firestore:"status"`
	StartedAt      *time.Time    `json:"started_at" firestore:"startedAt,omitempty"`
	EndedAt        *time.Time    `json:"ended_at" firestore:"endedAt,omitempty"`
	Finished       *bool         `json:"finished" firestore:"finished"`
	RatingFun      *int          `json:"rating_fun" firestore:"ratingFun"`
	RatingFriction *int          `json:"rating_friction" firestore:"ratingFriction"`
	WouldPlayAgain *bool         `json:"would_play_again" firestore:"wouldPlayAgain"`
	CreatedAt      time.Time     `json:"created_at" firestore:"createdAt"`
}

type SessionWithGame struct {
	Session
	Game *Game `json:"game"`
}
