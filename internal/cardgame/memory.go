package cardgame

import (
	"context"
	"sort"

	"github.com/demoapps/go-services/internal/store"
)

type MemoryRepository struct {
	items *store.Memory[Game]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: store.NewMemory[Game]()}
}

func (r *MemoryRepository) Insert(_ context.Context, g Game) error {
	r.items.Insert(g.ID, g)
	return nil
}

func (r *MemoryRepository) ListNewestFirst(_ context.Context) ([]Game, error) {
	out := r.items.Find(nil)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *MemoryRepository) CountResult(_ context.Context, res Result) (int64, error) {
	return int64(r.items.Count(func(g Game) bool { return g.Result == res })), nil
}
