package dictionary

import (
	"context"
	"fmt"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/store"
)

const suggestionLimit = 5

var (
	ErrWordRequired = apperr.With(apperr.ErrValidation, "Word is required")
	ErrInvalidWords = apperr.With(apperr.ErrValidation, "Invalid words array provided")
	ErrNoValidWords = apperr.With(apperr.ErrValidation, "No valid words found in the input")
)

// CheckResult answers a lookup: the stored word when it exists, otherwise
// suggestions.
type CheckResult struct {
	Exists      bool
	Word        *Word
	Suggestions []string
}

// BulkResult reports a bulk load.
type BulkResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, raw string) (*Word, error) {
	w := normalize(raw)
	if w == "" {
		return nil, ErrWordRequired
	}
	word := newWord(store.NewID(), w)
	if err := s.repo.Insert(ctx, word); err != nil {
		return nil, err
	}
	return &word, nil
}

// CleanWords keeps the non-blank strings of a decoded JSON array. raw that is
// not a non-empty array yields ErrInvalidWords.
func CleanWords(raw any) ([]string, error) {
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return nil, ErrInvalidWords
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			if w := normalize(s); w != "" {
				out = append(out, w)
			}
		}
	}
	if len(out) == 0 {
		return nil, ErrNoValidWords
	}
	return out, nil
}

// Bulk stores words, skipping any already present.
func (s *Service) Bulk(ctx context.Context, words []string) (*BulkResult, error) {
	if len(words) == 0 {
		return nil, ErrNoValidWords
	}
	docs := make([]Word, 0, len(words))
	for _, raw := range words {
		if w := normalize(raw); w != "" {
			docs = append(docs, newWord(store.NewID(), w))
		}
	}
	if len(docs) == 0 {
		return nil, ErrNoValidWords
	}
	n, err := s.repo.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	if skipped := len(docs) - n; skipped > 0 {
		return &BulkResult{
			Message: fmt.Sprintf("Words processed: %d added, %d duplicates skipped", n, skipped),
			Count:   n,
		}, nil
	}
	return &BulkResult{Message: "Words added successfully", Count: n}, nil
}

// Check looks up raw and, when it is missing, suggests up to five words that
// share all but its last or all but its first rune.
func (s *Service) Check(ctx context.Context, raw string) (*CheckResult, error) {
	w := normalize(raw)
	if w == "" {
		return nil, ErrWordRequired
	}
	found, err := s.repo.FindByWord(ctx, w)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return &CheckResult{Exists: true, Word: found}, nil
	}
	prefix, suffix := suggestionPatterns(w)
	matches, err := s.repo.Suggest(ctx, prefix, suffix, suggestionLimit)
	if err != nil {
		return nil, err
	}
	out := &CheckResult{Suggestions: make([]string, 0, len(matches))}
	for _, m := range matches {
		out.Suggestions = append(out.Suggestions, m.Word)
	}
	return out, nil
}

func (s *Service) Histogram(ctx context.Context) (*Histogram, error) {
	lengths, err := s.repo.LengthHistogram(ctx)
	if err != nil {
		return nil, err
	}
	letters, err := s.repo.LetterHistogram(ctx)
	if err != nil {
		return nil, err
	}
	return &Histogram{WordLength: lengths, FirstLetter: letters}, nil
}
