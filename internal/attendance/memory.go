package attendance

import (
	"context"
	"time"

	"github.com/demoapps/go-services/internal/store"
)

type MemoryRepository struct {
	items *store.Memory[Student]
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: store.NewMemory[Student]()}
}

func (r *MemoryRepository) List(_ context.Context, status Status) ([]Student, error) {
	if status == "" {
		return r.items.Find(nil), nil
	}
	return r.items.Find(func(s Student) bool { return s.Attendance == status }), nil
}

func (r *MemoryRepository) Insert(_ context.Context, s Student) error {
	r.items.Insert(s.ID, s)
	return nil
}

func (r *MemoryRepository) SetAttendance(_ context.Context, id string, status Status, at time.Time) (*Student, error) {
	s, ok := r.items.Update(id, func(s *Student) {
		s.Attendance = status
		s.UpdatedAt = at
	})
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *MemoryRepository) CountByAttendance(_ context.Context) (map[Status]int, error) {
	out := map[Status]int{}
	for _, s := range r.items.Find(nil) {
		out[s.Attendance]++
	}
	return out, nil
}
