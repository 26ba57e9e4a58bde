package bookmarks

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/demoapps/go-services/internal/storage"
	"github.com/demoapps/go-services/pkg/middleware"
)

func newRouter(objects storage.ObjectStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	NewHandler(NewService(NewMemoryRepository(), objects)).Register(r)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookmarksHTTP(t *testing.T) {
	r := newRouter(storage.NewMemoryStorage("http://objects"))

	w := do(r, "POST", "/bookmarks", `{"url":"https://go.dev","tags":"go"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"url":"https://go.dev"`)

	w = do(r, "POST", "/bookmarks", `{"notes":"no url"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "URL is required")

	w = do(r, "GET", "/bookmarks?tags=go", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "https://go.dev")

	w = do(r, "GET", "/bookmarks?tags=rust", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	w = do(r, "GET", "/bookmarks/by-tag", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{"tags":"go","count":1}]`, w.Body.String())

	w = do(r, "POST", "/bookmarks/export", "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"count":1`)
}

func TestBookmarksExportUnavailable(t *testing.T) {
	r := newRouter(nil)
	w := do(r, "POST", "/bookmarks/export", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "Object storage is not configured")
}
