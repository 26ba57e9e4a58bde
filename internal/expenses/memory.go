package expenses

import (
	"context"
	"sort"
	"time"

	"github.com/demoapps/go-services/internal/store"
)

type MemoryRepository struct {
	items *store.Memory[Expense]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: store.NewMemory[Expense]()}
}

func (r *MemoryRepository) Insert(_ context.Context, e Expense) error {
	r.items.Insert(e.ID, e)
	return nil
}

func (r *MemoryRepository) List(_ context.Context, category string) ([]Expense, error) {
	var pred func(Expense) bool
	if category != "" {
		pred = func(e Expense) bool { return e.Category == category }
	}
	out := r.items.Find(pred)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *MemoryRepository) TotalsByCategory(_ context.Context) ([]CategoryTotal, error) {
	sums := map[string]float64{}
	for _, e := range r.items.Find(nil) {
		sums[e.Category] += e.Amount
	}
	out := make([]CategoryTotal, 0, len(sums))
	for c, t := range sums {
		out = append(out, CategoryTotal{Category: c, Total: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (r *MemoryRepository) TotalSince(_ context.Context, since time.Time) (float64, error) {
	total := 0.0
	for _, e := range r.items.Find(func(e Expense) bool { return !e.Date.Before(since) }) {
		total += e.Amount
	}
	return total, nil
}
