package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/store"
	"github.com/demoapps/go-services/internal/validation"
)

var (
	ErrNameRequired  = apperr.With(apperr.ErrValidation, "Student name is required")
	ErrInvalidStatus = apperr.With(apperr.ErrValidation, "Invalid attendance status")
	ErrInvalidID     = apperr.With(apperr.ErrBadRequest, "Invalid student ID format")
	ErrNotFound      = apperr.With(apperr.ErrNotFound, "Student not found")
)

// CreateInput is the payload for a new student.
type CreateInput struct {
	Name string `json:"name" validate:"required,notblank"`
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns every student, or only those with status when it is set.
func (s *Service) List(ctx context.Context, status Status) ([]Student, error) {
	if status != "" {
		if err := validation.OneOf("attendance", status, Statuses...); err != nil {
			return nil, validation.AsAppError(err, ErrInvalidStatus.Message)
		}
	}
	return s.repo.List(ctx, status)
}

// Create stores a new student with the default mark Given.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Student, error) {
	if err := validation.Struct(in); err != nil {
		return nil, validation.AsAppError(err, ErrNameRequired.Message)
	}
	now := s.now().UTC()
	st := Student{
		ID:         store.NewID(),
		Name:       strings.TrimSpace(in.Name),
		Attendance: Given,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Insert(ctx, st); err != nil {
		return nil, err
	}
	return &st, nil
}

// UpdateAttendance sets the mark of one student. The status is checked
// before the id so an invalid mark never reaches the store.
func (s *Service) UpdateAttendance(ctx context.Context, id string, status Status) (*Student, error) {
	if err := validation.OneOf("attendance", status, Statuses...); err != nil {
		return nil, validation.AsAppError(err, ErrInvalidStatus.Message)
	}
	if !store.ValidID(id) {
		return nil, ErrInvalidID
	}
	st, err := s.repo.SetAttendance(ctx, id, status, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrNotFound
	}
	return st, nil
}

// Summary counts students per mark. Every mark is present, zero-filled.
func (s *Service) Summary(ctx context.Context) ([]StatusCount, error) {
	counts, err := s.repo.CountByAttendance(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StatusCount, 0, len(Statuses))
	for _, st := range Statuses {
		out = append(out, StatusCount{Attendance: st, Count: counts[st]})
	}
	return out, nil
}
