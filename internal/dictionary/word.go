// Package dictionary stores a word list and answers lookups, near-miss
// suggestions and length/letter histograms over it.
package dictionary

import (
	"strings"
	"unicode/utf8"
)

type Word struct {
	ID          string `bson:"_id" json:"_id"`
	Word        string `bson:"word" json:"word"`
	Length      int    `bson:"length" json:"length"`
	FirstLetter string `bson:"firstLetter" json:"firstLetter"`
}

// normalize lowercases and trims raw.
func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// newWord derives the stored fields from an already normalized word.
func newWord(id, w string) Word {
	first, _ := utf8.DecodeRuneInString(w)
	return Word{
		ID:          id,
		Word:        w,
		Length:      utf8.RuneCountInString(w),
		FirstLetter: string(first),
	}
}

// suggestionPatterns returns the prefix and suffix used to look for near
// misses: the word without its last rune (never shorter than one rune) and
// the word without its first rune.
func suggestionPatterns(w string) (prefix, suffix string) {
	r := []rune(w)
	if len(r) == 0 {
		return "", ""
	}
	n := len(r) - 1
	if n < 1 {
		n = 1
	}
	return string(r[:n]), string(r[1:])
}

type LengthCount struct {
	Length int `bson:"_id" json:"length"`
	Count  int `bson:"count" json:"count"`
}

type LetterCount struct {
	Letter string `bson:"_id" json:"letter"`
	Count  int    `bson:"count" json:"count"`
}

type Histogram struct {
	WordLength  []LengthCount `json:"wordLength"`
	FirstLetter []LetterCount `json:"firstLetter"`
}
