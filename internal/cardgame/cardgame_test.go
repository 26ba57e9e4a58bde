package cardgame

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/pkg/middleware"
)

func TestRecordAndStats(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, r := range []Result{Win, Loss, Win} {
		at := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return at }
		_, err := svc.Record(ctx, r)
		require.NoError(t, err)
	}

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, Stats{Wins: 2, Losses: 1}, st)

	games, err := svc.Games(ctx)
	require.NoError(t, err)
	require.Len(t, games, 3)
	require.Equal(t, base.Add(2*time.Minute), games[0].Date)
	require.Equal(t, base, games[2].Date)

	_, err = svc.Record(ctx, "draw")
	require.Equal(t, 400, apperr.Status(err))
	st, _ = svc.Stats(ctx)
	require.Equal(t, int64(3), st.Wins+st.Losses)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGameHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	NewHandler(NewService(NewMemoryRepository())).Register(r)

	w := do(r, "GET", "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"wins":0,"losses":0}`, w.Body.String())

	w = do(r, "POST", "/api/game", `{"result":"win"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"message":"Saved"}`, w.Body.String())

	w = do(r, "POST", "/api/game", `{"result":"tie"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "POST", "/api/game", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "GET", "/api/stats", "")
	require.JSONEq(t, `{"wins":1,"losses":0}`, w.Body.String())

	w = do(r, "GET", "/api/games", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"result":"win"`)
}
