package bookmarks

import (
	"context"
	"sort"

	"github.com/demoapps/go-services/internal/store"
)

type MemoryRepository struct {
	items *store.Memory[Bookmark]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: store.NewMemory[Bookmark]()}
}

func (r *MemoryRepository) List(_ context.Context, tags string) ([]Bookmark, error) {
	if tags == "" {
		return r.items.Find(nil), nil
	}
	return r.items.Find(func(b Bookmark) bool { return b.Tags == tags }), nil
}

func (r *MemoryRepository) Insert(_ context.Context, b Bookmark) error {
	r.items.Insert(b.ID, b)
	return nil
}

func (r *MemoryRepository) CountByTag(_ context.Context) ([]TagCount, error) {
	counts := map[string]int{}
	for _, b := range r.items.Find(nil) {
		counts[b.Tags]++
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tags: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tags < out[j].Tags
	})
	return out, nil
}
