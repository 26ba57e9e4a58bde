package dictionary

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/demoapps/go-services/pkg/middleware"
)

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDictionaryHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	NewHandler(NewService(NewMemoryRepository())).Register(r)

	w := do(r, "POST", "/dictionary", `{"word":"Hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"word":"hello"`)
	require.Contains(t, w.Body.String(), `"length":5`)
	require.Contains(t, w.Body.String(), `"firstLetter":"h"`)

	w = do(r, "POST", "/dictionary", `{"word":"hello"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(r, "POST", "/dictionary", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "POST", "/dictionary/bulk", `{"words":"nope"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid words array provided")

	w = do(r, "POST", "/dictionary/bulk", `{"words":[1,"  "]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "No valid words found in the input")

	w = do(r, "POST", "/dictionary/bulk", `{"words":["help","hello",7]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"message":"Words processed: 1 added, 1 duplicates skipped","count":1}`, w.Body.String())

	w = do(r, "GET", "/dictionary/check/HELLO", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"exists":true`)

	w = do(r, "GET", "/dictionary/check/helm", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"exists":false,"suggestions":["hello","help"]}`, w.Body.String())

	w = do(r, "GET", "/dictionary/check/qqq", "")
	require.JSONEq(t, `{"exists":false,"suggestions":[]}`, w.Body.String())

	w = do(r, "GET", "/dictionary/histogram", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"wordLength":[{"length":4,"count":1},{"length":5,"count":1}],"firstLetter":[{"letter":"h","count":2}]}`, w.Body.String())
}
