package typing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/demoapps/go-services/internal/tokens"
	"github.com/demoapps/go-services/pkg/middleware"
)

const testSecret = "typing-handler-secret-0123456789abcdef"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	NewHandler(newService(), tokens.NewIssuer(testSecret, time.Hour)).Register(r)
	return r
}

func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, user string) string {
	t.Helper()
	tok, err := tokens.NewIssuer(testSecret, time.Hour).Generate(user)
	require.NoError(t, err)
	return tok
}

func TestTextsHTTP(t *testing.T) {
	r := newRouter()

	w := do(r, "GET", "/api/texts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var texts []Text
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &texts))
	require.Len(t, texts, 2)

	w = do(r, "POST", "/api/texts", `{"content":"new text","difficulty":"medium"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Authentication required")

	w = do(r, "POST", "/api/texts", `{"content":"new text","difficulty":"medium"}`, token(t, "u1"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, "GET", "/api/texts?difficulty=medium", "", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &texts))
	require.Len(t, texts, 3)
}

func TestResultsHTTP(t *testing.T) {
	r := newRouter()
	alice := token(t, "alice")

	for _, path := range []string{"/api/results", "/api/results/recent", "/api/results/summary"} {
		w := do(r, "GET", path, "", "")
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := do(r, "POST", "/api/results", `{"wpm":55,"accuracy":97.5,"timeInSeconds":60,"difficulty":"medium"}`, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"user":"alice"`)

	w = do(r, "POST", "/api/results", `{"wpm":55,"accuracy":120,"timeInSeconds":60}`, alice)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "GET", "/api/results", "", token(t, "bob"))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = do(r, "GET", "/api/results/recent", "", alice)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"wpm":55`)

	w = do(r, "GET", "/api/results/summary", "", alice)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[
		{"difficulty":"easy","count":0,"averageWpm":0,"averageAccuracy":0},
		{"difficulty":"medium","count":1,"averageWpm":55,"averageAccuracy":97.5},
		{"difficulty":"hard","count":0,"averageWpm":0,"averageAccuracy":0}
	]`, w.Body.String())
}
