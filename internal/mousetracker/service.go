package mousetracker

import (
	"context"
	"fmt"
	"time"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/store"
	"github.com/demoapps/go-services/internal/validation"
)

const DefaultCell = 20

var (
	ErrNotArray    = apperr.With(apperr.ErrValidation, "Events should be an array")
	ErrInvalidCell = apperr.With(apperr.ErrValidation, "cell must be a positive integer")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SaveBatch validates every event and stores the batch. One invalid event
// rejects the whole batch.
func (s *Service) SaveBatch(ctx context.Context, batch []EventInput) ([]MouseEvent, error) {
	now := s.now().UTC()
	events := make([]MouseEvent, 0, len(batch))
	for i, in := range batch {
		if err := validation.Struct(in); err != nil {
			return nil, validation.AsAppError(err, fmt.Sprintf("Invalid event at index %d", i))
		}
		e := MouseEvent{ID: store.NewID(), X: *in.X, Y: *in.Y, Timestamp: now}
		if in.Count != nil {
			e.Count = *in.Count
		}
		if in.Timestamp != nil && !in.Timestamp.IsZero() {
			e.Timestamp = in.Timestamp.UTC()
		}
		events = append(events, e)
	}
	if err := s.repo.InsertMany(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Service) List(ctx context.Context) ([]MouseEvent, error) {
	return s.repo.List(ctx)
}

func (s *Service) Heatmap(ctx context.Context, cell int) ([]Cell, error) {
	if cell <= 0 {
		return nil, ErrInvalidCell
	}
	return s.repo.Heatmap(ctx, cell)
}
