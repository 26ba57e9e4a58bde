package mousetracker

import (
	"context"
	"math"
	"sort"

	"github.com/demoapps/go-services/internal/store"
)

type MemoryRepository struct {
	items *store.Memory[MouseEvent]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: store.NewMemory[MouseEvent]()}
}

func (r *MemoryRepository) InsertMany(_ context.Context, events []MouseEvent) error {
	for _, e := range events {
		r.items.Insert(e.ID, e)
	}
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]MouseEvent, error) {
	out := r.items.Find(nil)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *MemoryRepository) Heatmap(_ context.Context, cell int) ([]Cell, error) {
	size := float64(cell)
	type key struct{ x, y float64 }
	sums := map[key]int{}
	for _, e := range r.items.Find(nil) {
		k := key{math.Floor(e.X/size) * size, math.Floor(e.Y/size) * size}
		sums[k] += e.Count
	}
	out := make([]Cell, 0, len(sums))
	for k, n := range sums {
		out = append(out, Cell{X: k.x, Y: k.y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out, nil
}
