// Package bookmarks stores saved links with free-form notes and a tag.
package bookmarks

import "time"

type Bookmark struct {
	ID        string    `bson:"_id" json:"_id"`
	URL       string    `bson:"url" json:"url"`
	Date      string    `bson:"date" json:"date"`
	Notes     string    `bson:"notes" json:"notes"`
	Tags      string    `bson:"tags" json:"tags"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// TagCount is one row of the per-tag aggregate.
type TagCount struct {
	Tags  string `bson:"_id" json:"tags"`
	Count int    `bson:"count" json:"count"`
}

// Export describes a CSV snapshot written to object storage.
type Export struct {
	Key   string `json:"key"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}
