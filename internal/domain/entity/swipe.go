package entity

import (
	"time"
)

type SwipeDecision string

const (
	DecisionIgnore     SwipeDecision = "ignore"
	DecisionInterested SwipeDecision = "interested"
)

// Swipe records a user's decision on a catalog game. There is exactly one
// swipe per (user, game) pair; re-swiping replaces the prior decision.
type Swipe struct {
	ID        string        `json:"id" firestore:"id"`
	UserID    string        `json:"user_id" firestore:"userId"`
	GameID    string        `json:"game_id" firestore:"gameId"`
	Decision  SwipeDecision `json:"decision" firestore:"decision"`
	CreatedAt time.Time     `json:"created_at" firestore:"createdAt"`
}

type SwipeWithGame struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	GameID    string        `json:"game_id"`
	Decision  SwipeDecision `json:"decision"`
	Game      *Game         `json:"game"`
	CreatedAt time.Time     `json:"created_at"`
}
