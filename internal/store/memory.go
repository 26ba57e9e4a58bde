// Package store holds the in-memory collection used by every memory-backed
// repository. It mirrors the subset of document-store behavior the services
// rely on: id-keyed documents, insertion order, predicate queries and
// single-document updates.
package store

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID returns a fresh 24-char hex identifier, the same shape Mongo assigns.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ValidID reports whether id has the identifier shape.
func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// Memory is a concurrency-safe collection of T keyed by string id.
// Values are copied in and out, so callers never share state with the store.
type Memory[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{items: make(map[string]T)}
}

// Insert stores v under id. It returns false when id already exists.
func (m *Memory[T]) Insert(id string, v T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; ok {
		return false
	}
	m.items[id] = v
	m.order = append(m.order, id)
	return true
}

// InsertUnique stores v unless conflict(existing, v) holds for any document.
// The check and the write happen under one lock.
func (m *Memory[T]) InsertUnique(id string, v T, conflict func(existing, v T) bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; ok {
		return false
	}
	for _, e := range m.items {
		if conflict(e, v) {
			return false
		}
	}
	m.items[id] = v
	m.order = append(m.order, id)
	return true
}

func (m *Memory[T]) Get(id string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[id]
	return v, ok
}

// FindOne returns the first document, in insertion order, matching pred.
func (m *Memory[T]) FindOne(pred func(T) bool) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.order {
		if v := m.items[id]; pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Find returns every document matching pred in insertion order. A nil pred
// matches everything.
func (m *Memory[T]) Find(pred func(T) bool) []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		v := m.items[id]
		if pred == nil || pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (m *Memory[T]) Count(pred func(T) bool) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if pred == nil {
		return len(m.items)
	}
	n := 0
	for _, v := range m.items {
		if pred(v) {
			n++
		}
	}
	return n
}

// Update applies fn to the document stored under id and returns the result.
func (m *Memory[T]) Update(id string, fn func(*T)) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&v)
	m.items[id] = v
	return v, true
}
