package typing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/store"
	"github.com/demoapps/go-services/internal/validation"
	"github.com/demoapps/go-services/pkg/logger"
)

const recentLimit = 10

var ErrInvalidDifficulty = apperr.With(apperr.ErrValidation, "Invalid difficulty")

type TextInput struct {
	Content    string     `json:"content" validate:"required,notblank"`
	Difficulty Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type ResultInput struct {
	WPM           *float64   `json:"wpm" validate:"required,gte=0"`
	Accuracy      *float64   `json:"accuracy" validate:"required,gte=0,lte=100"`
	TimeInSeconds *float64   `json:"timeInSeconds" validate:"required,gte=0"`
	Difficulty    Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type Service struct {
	texts   TextRepository
	results ResultRepository
	now     func() time.Time
	seedMu  sync.Mutex
}

func NewService(texts TextRepository, results ResultRepository) *Service {
	return &Service{texts: texts, results: results, now: time.Now}
}

func parseDifficulty(raw string) (Difficulty, error) {
	if raw == "" {
		return Easy, nil
	}
	d := Difficulty(strings.ToLower(raw))
	if err := validation.OneOf("difficulty", d, Difficulties...); err != nil {
		return "", validation.AsAppError(err, ErrInvalidDifficulty.Message)
	}
	return d, nil
}

// Texts lists texts of one difficulty (easy when raw is empty). The sample
// texts are inserted first when no text exists at all.
func (s *Service) Texts(ctx context.Context, raw string) ([]Text, error) {
	d, err := parseDifficulty(raw)
	if err != nil {
		return nil, err
	}
	if err := s.seedTexts(ctx); err != nil {
		return nil, err
	}
	return s.texts.ListByDifficulty(ctx, d)
}

func (s *Service) seedTexts(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	n, err := s.texts.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	now := s.now().UTC()
	docs := make([]Text, len(sampleTexts))
	for i, t := range sampleTexts {
		t.ID = store.NewID()
		t.CreatedAt = now
		docs[i] = t
	}
	logger.Infof("seeding %d sample texts", len(docs))
	return s.texts.InsertMany(ctx, docs)
}

func (s *Service) AddText(ctx context.Context, in TextInput) (*Text, error) {
	if err := validation.Struct(in); err != nil {
		return nil, validation.AsAppError(err, "")
	}
	t := Text{
		ID:         store.NewID(),
		Content:    strings.TrimSpace(in.Content),
		Difficulty: in.Difficulty,
		CreatedAt:  s.now().UTC(),
	}
	if t.Difficulty == "" {
		t.Difficulty = Easy
	}
	if err := s.texts.InsertMany(ctx, []Text{t}); err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveResult stores a result owned by user.
func (s *Service) SaveResult(ctx context.Context, user string, in ResultInput) (*Result, error) {
	if user == "" {
		return nil, apperr.ErrUnauthorized
	}
	if err := validation.Struct(in); err != nil {
		return nil, validation.AsAppError(err, "")
	}
	r := Result{
		ID:            store.NewID(),
		User:          user,
		WPM:           *in.WPM,
		Accuracy:      *in.Accuracy,
		TimeInSeconds: *in.TimeInSeconds,
		Difficulty:    in.Difficulty,
		CreatedAt:     s.now().UTC(),
	}
	if r.Difficulty == "" {
		r.Difficulty = Easy
	}
	if err := s.results.Insert(ctx, r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Service) Results(ctx context.Context, user string) ([]Result, error) {
	return s.results.ListByUser(ctx, user, 0)
}

func (s *Service) Recent(ctx context.Context, user string) ([]Result, error) {
	return s.results.ListByUser(ctx, user, recentLimit)
}

// Summary reports count and averages per difficulty in easy, medium, hard
// order; difficulties without results report zeros.
func (s *Service) Summary(ctx context.Context, user string) ([]Summary, error) {
	rows, err := s.results.SummaryByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	byDifficulty := make(map[Difficulty]Summary, len(rows))
	for _, r := range rows {
		byDifficulty[r.Difficulty] = r
	}
	out := make([]Summary, 0, len(Difficulties))
	for _, d := range Difficulties {
		row, ok := byDifficulty[d]
		if !ok {
			row = Summary{Difficulty: d}
		}
		out = append(out, row)
	}
	return out, nil
}
