// Package attendance tracks students and a single attendance mark per student.
package attendance

import "time"

// Status is an attendance mark.
type Status string

const (
	Present Status = "Present"
	Absent  Status = "Absent"
	Given   Status = "Given"
)

// Statuses lists every mark in display order.
var Statuses = []Status{Present, Absent, Given}

type Student struct {
	ID         string    `bson:"_id" json:"_id"`
	Name       string    `bson:"name" json:"name"`
	Attendance Status    `bson:"attendance" json:"attendance"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StatusCount is one row of the attendance summary.
type StatusCount struct {
	Attendance Status `json:"attendance"`
	Count      int    `json:"count"`
}
