package typing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/validation"
)

func num(v float64) *float64 { return &v }

func newService() *Service {
	return NewService(NewMemoryTextRepository(), NewMemoryResultRepository())
}

func TestTextsSeedOnlyWhenEmpty(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	easy, err := svc.Texts(ctx, "")
	require.NoError(t, err)
	require.Len(t, easy, 2)
	for _, tx := range easy {
		require.Equal(t, Easy, tx.Difficulty)
	}

	hard, err := svc.Texts(ctx, "hard")
	require.NoError(t, err)
	require.Len(t, hard, 2)

	n, err := svc.texts.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)

	_, err = svc.Texts(ctx, "extreme")
	require.Equal(t, 400, apperr.Status(err))
}

func TestTextsNoSeedWhenAnyTextExists(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	_, err := svc.AddText(ctx, TextInput{Content: "only hard", Difficulty: Hard})
	require.NoError(t, err)

	easy, err := svc.Texts(ctx, "easy")
	require.NoError(t, err)
	require.Empty(t, easy)
}

func TestAddTextDefaultsAndValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	tx, err := svc.AddText(ctx, TextInput{Content: " practice "})
	require.NoError(t, err)
	require.Equal(t, Easy, tx.Difficulty)
	require.Equal(t, "practice", tx.Content)

	_, err = svc.AddText(ctx, TextInput{Content: " "})
	require.Equal(t, 400, apperr.Status(err))
	_, err = svc.AddText(ctx, TextInput{Content: "x", Difficulty: "expert"})
	require.Equal(t, 400, apperr.Status(err))
}

func TestSaveResultValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.SaveResult(ctx, "u1", ResultInput{WPM: num(-1), Accuracy: num(101)})
	require.Equal(t, 400, apperr.Status(err))
	e, _ := apperr.As(err)
	f := e.Fields.(validation.Failures)
	require.True(t, f.Has("wpm"))
	require.True(t, f.Has("accuracy"))
	require.True(t, f.Has("timeInSeconds"))

	r, err := svc.SaveResult(ctx, "u1", ResultInput{WPM: num(0), Accuracy: num(100), TimeInSeconds: num(0)})
	require.NoError(t, err)
	require.Equal(t, Easy, r.Difficulty)
	require.Equal(t, "u1", r.User)

	_, err = svc.SaveResult(ctx, "", ResultInput{WPM: num(1), Accuracy: num(1), TimeInSeconds: num(1)})
	require.Equal(t, 401, apperr.Status(err))
}

func TestResultsRecentAndSummary(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 12; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return at }
		d := Easy
		if i%2 == 1 {
			d = Hard
		}
		_, err := svc.SaveResult(ctx, "alice", ResultInput{WPM: num(float64(40 + i)), Accuracy: num(90), TimeInSeconds: num(60), Difficulty: d})
		require.NoError(t, err)
	}
	_, err := svc.SaveResult(ctx, "bob", ResultInput{WPM: num(99), Accuracy: num(99), TimeInSeconds: num(30)})
	require.NoError(t, err)

	all, err := svc.Results(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, all, 12)
	require.Equal(t, 51.0, all[0].WPM)

	recent, err := svc.Recent(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, recent, 10)
	require.Equal(t, 51.0, recent[0].WPM)
	require.Equal(t, 42.0, recent[9].WPM)

	summary, err := svc.Summary(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, []Summary{
		{Difficulty: Easy, Count: 6, AverageWPM: 45, AverageAccuracy: 90},
		{Difficulty: Medium},
		{Difficulty: Hard, Count: 6, AverageWPM: 46, AverageAccuracy: 90},
	}, summary)
}
