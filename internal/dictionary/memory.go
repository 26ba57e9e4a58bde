package dictionary

import (
	"context"
	"sort"
	"strings"

	"github.com/demoapps/go-services/internal/store"
)

type MemoryRepository struct {
	items *store.Memory[Word]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: store.NewMemory[Word]()}
}

func sameWord(existing, w Word) bool { return existing.Word == w.Word }

func (r *MemoryRepository) Insert(_ context.Context, w Word) error {
	if !r.items.InsertUnique(w.ID, w, sameWord) {
		return ErrWordExists
	}
	return nil
}

func (r *MemoryRepository) InsertMany(_ context.Context, words []Word) (int, error) {
	n := 0
	for _, w := range words {
		if r.items.InsertUnique(w.ID, w, sameWord) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepository) FindByWord(_ context.Context, word string) (*Word, error) {
	w, ok := r.items.FindOne(func(w Word) bool { return w.Word == word })
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *MemoryRepository) Suggest(_ context.Context, prefix, suffix string, limit int) ([]Word, error) {
	out := r.items.Find(func(w Word) bool {
		return strings.HasPrefix(w.Word, prefix) || (suffix != "" && strings.HasSuffix(w.Word, suffix))
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepository) LengthHistogram(_ context.Context) ([]LengthCount, error) {
	counts := map[int]int{}
	for _, w := range r.items.Find(nil) {
		counts[w.Length]++
	}
	out := make([]LengthCount, 0, len(counts))
	for l, n := range counts {
		out = append(out, LengthCount{Length: l, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Length < out[j].Length })
	return out, nil
}

func (r *MemoryRepository) LetterHistogram(_ context.Context) ([]LetterCount, error) {
	counts := map[string]int{}
	for _, w := range r.items.Find(nil) {
		counts[w.FirstLetter]++
	}
	out := make([]LetterCount, 0, len(counts))
	for l, n := range counts {
		out = append(out, LetterCount{Letter: l, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Letter < out[j].Letter })
	return out, nil
}
