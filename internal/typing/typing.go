// Package typing serves practice texts and stores per-user typing test results.
package typing

import "time"

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

type Text struct {
	ID         string     `bson:"_id" json:"_id"`
	Content    string     `bson:"content" json:"content"`
	Difficulty Difficulty `bson:"difficulty" json:"difficulty"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}

type Result struct {
	ID            string     `bson:"_id" json:"_id"`
	User          string     `bson:"user" json:"user"`
	WPM           float64    `bson:"wpm" json:"wpm"`
	Accuracy      float64    `bson:"accuracy" json:"accuracy"`
	TimeInSeconds float64    `bson:"timeInSeconds" json:"timeInSeconds"`
	Difficulty    Difficulty `bson:"difficulty" json:"difficulty"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}

// Summary aggregates one user's results for one difficulty.
type Summary struct {
	Difficulty      Difficulty `bson:"_id" json:"difficulty"`
	Count           int        `bson:"count" json:"count"`
	AverageWPM      float64    `bson:"averageWpm" json:"averageWpm"`
	AverageAccuracy float64    `bson:"averageAccuracy" json:"averageAccuracy"`
}

// sampleTexts are inserted when the texts collection is empty.
var sampleTexts = []Text{
	{Difficulty: Easy, Content: "The quick brown fox jumps over the lazy dog. This pangram contains every letter of the English alphabet."},
	{Difficulty: Easy, Content: "Programming is the process of creating a set of instructions that tell a computer how to perform a task."},
	{Difficulty: Medium, Content: "Learning to type quickly and accurately is an essential skill in today's digital world. Practice regularly to improve."},
	{Difficulty: Medium, Content: "The science of today is the technology of tomorrow. We can only see a short distance ahead, but we can see plenty there that needs to be done."},
	{Difficulty: Hard, Content: "Success is not final, failure is not fatal: It is the courage to continue that counts. The best way to predict the future is to create it yourself."},
	{Difficulty: Hard, Content: "Artificial intelligence is the simulation of human intelligence processes by machines, especially computer systems. These processes include learning, reasoning, and self-correction."},
}
