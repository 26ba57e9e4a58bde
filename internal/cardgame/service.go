package cardgame

import (
	"context"
	"time"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/store"
	"github.com/demoapps/go-services/internal/validation"
)

var ErrInvalidResult = apperr.With(apperr.ErrValidation, "Result must be 'win' or 'loss'")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record stores one finished game dated now.
func (s *Service) Record(ctx context.Context, r Result) (*Game, error) {
	if err := validation.OneOf("result", r, Win, Loss); err != nil {
		return nil, validation.AsAppError(err, ErrInvalidResult.Message)
	}
	g := Game{ID: store.NewID(), Result: r, Date: s.now().UTC()}
	if err := s.repo.Insert(ctx, g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) Games(ctx context.Context) ([]Game, error) {
	return s.repo.ListNewestFirst(ctx)
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	wins, err := s.repo.CountResult(ctx, Win)
	if err != nil {
		return Stats{}, err
	}
	losses, err := s.repo.CountResult(ctx, Loss)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Wins: wins, Losses: losses}, nil
}
