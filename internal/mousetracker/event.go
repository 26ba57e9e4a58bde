// Package mousetracker stores pointer positions sent in batches and
// aggregates them into a heatmap grid.
package mousetracker

import "time"

type MouseEvent struct {
	ID        string    `bson:"_id" json:"_id"`
	X         float64   `bson:"x" json:"x"`
	Y         float64   `bson:"y" json:"y"`
	Count     int       `bson:"count" json:"count"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// EventInput is one element of a posted batch.
type EventInput struct {
	X         *float64   `json:"x" validate:"required"`
	Y         *float64   `json:"y" validate:"required"`
	Count     *int       `json:"count" validate:"omitempty,gte=0"`
	Timestamp *time.Time `json:"timestamp"`
}

// Cell is one heatmap bucket; X and Y are the bucket's lower corner.
type Cell struct {
	X     float64 `bson:"x" json:"x"`
	Y     float64 `bson:"y" json:"y"`
	Count int     `bson:"count" json:"count"`
}
