package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/validation"
)

func amount(v float64) *float64 { return &v }

func day(t time.Time) *InputDate { return &InputDate{Time: t} }

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Description: "", Amount: amount(-1), Category: " "})
	require.Equal(t, 400, apperr.Status(err))
	e, ok := apperr.As(err)
	require.True(t, ok)
	f := e.Fields.(validation.Failures)
	require.True(t, f.Has("description"))
	require.True(t, f.Has("amount"))
	require.True(t, f.Has("category"))

	_, err = svc.Create(ctx, CreateInput{Description: "tea", Category: "Food"})
	require.Equal(t, 400, apperr.Status(err))

	got, err := svc.Create(ctx, CreateInput{Description: "free sample", Amount: amount(0), Category: "Food"})
	require.NoError(t, err)
	require.Equal(t, 0.0, got.Amount)
	require.False(t, got.Date.IsZero())
}

func TestListNewestFirstAndFilter(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()
	d1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 2)
	d3 := d1.AddDate(0, 0, 1)
	for _, in := range []CreateInput{
		{Date: day(d1), Description: "a", Amount: amount(1), Category: "Food"},
		{Date: day(d2), Description: "b", Amount: amount(2), Category: "Bills"},
		{Date: day(d3), Description: "c", Amount: amount(3), Category: "Food"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c", "a"}, []string{all[0].Description, all[1].Description, all[2].Description})

	food, err := svc.List(ctx, "Food")
	require.NoError(t, err)
	require.Len(t, food, 2)
	require.Equal(t, "c", food[0].Description)
}

func TestStats(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	old := now.AddDate(0, 0, -8)
	recent := now.AddDate(0, 0, -2)
	for _, in := range []CreateInput{
		{Date: day(old), Description: "rent", Amount: amount(500), Category: "Bills"},
		{Date: day(recent), Description: "lunch", Amount: amount(20), Category: "Food"},
		{Description: "dinner", Amount: amount(30.5), Category: "Food"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	rows, err := svc.ByCategory(ctx)
	require.NoError(t, err)
	require.Equal(t, []CategoryTotal{{Category: "Bills", Total: 500}, {Category: "Food", Total: 50.5}}, rows)

	total, err := svc.LastSevenDays(ctx)
	require.NoError(t, err)
	require.Equal(t, 50.5, total)
}

func TestCreateFromSMS(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	e, err := svc.CreateFromSMS(ctx, "Paid Rs. 250 for lunch at cafe")
	require.NoError(t, err)
	require.Equal(t, 250.0, e.Amount)
	require.Equal(t, "Food", e.Category)
	require.Equal(t, "250 for lunch", e.Description)

	_, err = svc.CreateFromSMS(ctx, "   ")
	require.Equal(t, "SMS text is required", apperr.Message(err))

	// only an amount: the description is empty after extraction
	_, err = svc.CreateFromSMS(ctx, "Rs 50")
	require.Equal(t, 400, apperr.Status(err))
}
