package expenses

import (
	"context"
	"strings"
	"time"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/store"
	"github.com/demoapps/go-services/internal/validation"
)

const recentWindow = 7 * 24 * time.Hour

var ErrTextRequired = apperr.With(apperr.ErrValidation, "SMS text is required")

// CreateInput is the payload for a manual expense. Date defaults to now.
type CreateInput struct {
	Date        *InputDate `json:"date"`
	Description string     `json:"description" validate:"required,notblank"`
	Amount      *float64   `json:"amount" validate:"required,gte=0"`
	Category    string     `json:"category" validate:"required,notblank"`
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Expense, error) {
	if err := validation.Struct(in); err != nil {
		return nil, validation.AsAppError(err, "")
	}
	e := Expense{
		ID:          store.NewID(),
		Date:        s.now().UTC(),
		Description: strings.TrimSpace(in.Description),
		Amount:      *in.Amount,
		Category:    strings.TrimSpace(in.Category),
	}
	if in.Date != nil && !in.Date.IsZero() {
		e.Date = in.Date.UTC()
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateFromSMS parses text with ParseSMS and stores the result dated now.
func (s *Service) CreateFromSMS(ctx context.Context, text string) (*Expense, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	d := ParseSMS(text)
	amount := d.Amount
	return s.Create(ctx, CreateInput{
		Description: d.Description,
		Amount:      &amount,
		Category:    d.Category,
	})
}

func (s *Service) List(ctx context.Context, category string) ([]Expense, error) {
	return s.repo.List(ctx, category)
}

func (s *Service) ByCategory(ctx context.Context) ([]CategoryTotal, error) {
	return s.repo.TotalsByCategory(ctx)
}

// LastSevenDays sums expenses dated within the last seven days.
func (s *Service) LastSevenDays(ctx context.Context) (float64, error) {
	return s.repo.TotalSince(ctx, s.now().UTC().Add(-recentWindow))
}
