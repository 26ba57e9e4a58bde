package typing

import (
	"context"
	"sort"

	"github.com/demoapps/go-services/internal/store"
)

type MemoryTextRepository struct {
	items *store.Memory[Text]
}

func NewMemoryTextRepository() *MemoryTextRepository {
	return &MemoryTextRepository{items: store.NewMemory[Text]()}
}

func (r *MemoryTextRepository) Count(_ context.Context) (int64, error) {
	return int64(r.items.Count(nil)), nil
}

func (r *MemoryTextRepository) InsertMany(_ context.Context, texts []Text) error {
	for _, t := range texts {
		r.items.Insert(t.ID, t)
	}
	return nil
}

func (r *MemoryTextRepository) ListByDifficulty(_ context.Context, d Difficulty) ([]Text, error) {
	return r.items.Find(func(t Text) bool { return t.Difficulty == d }), nil
}

type MemoryResultRepository struct {
	items *store.Memory[Result]
}

func NewMemoryResultRepository() *MemoryResultRepository {
	return &MemoryResultRepository{items: store.NewMemory[Result]()}
}

func (r *MemoryResultRepository) Insert(_ context.Context, res Result) error {
	r.items.Insert(res.ID, res)
	return nil
}

func (r *MemoryResultRepository) ListByUser(_ context.Context, user string, limit int) ([]Result, error) {
	out := r.items.Find(func(res Result) bool { return res.User == user })
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryResultRepository) SummaryByUser(_ context.Context, user string) ([]Summary, error) {
	acc := map[Difficulty]*Summary{}
	var order []Difficulty
	for _, res := range r.items.Find(func(res Result) bool { return res.User == user }) {
		s, ok := acc[res.Difficulty]
		if !ok {
			s = &Summary{Difficulty: res.Difficulty}
			acc[res.Difficulty] = s
			order = append(order, res.Difficulty)
		}
		s.Count++
		s.AverageWPM += res.WPM
		s.AverageAccuracy += res.Accuracy
	}
	out := make([]Summary, 0, len(order))
	for _, d := range order {
		s := acc[d]
		s.AverageWPM /= float64(s.Count)
		s.AverageAccuracy /= float64(s.Count)
		out = append(out, *s)
	}
	return out, nil
}
