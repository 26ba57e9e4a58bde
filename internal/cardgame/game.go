// Package cardgame records finished games and reports win/loss totals.
package cardgame

import "time"

type Result string

const (
	Win  Result = "win"
	Loss Result = "loss"
)

type Game struct {
	ID     string    `bson:"_id" json:"_id"`
	Result Result    `bson:"result" json:"result"`
	Date   time.Time `bson:"date" json:"date"`
}

type Stats struct {
	Wins   int64 `json:"wins"`
	Losses int64 `json:"losses"`
}
