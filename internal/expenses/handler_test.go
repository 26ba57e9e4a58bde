package expenses

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

func TestExpensesHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	NewHandler(NewService(NewMemoryRepository())).Register(r)

	w := do(r, "POST", "/expenses", `{"description":"bus pass","amount":40,"category":"Transport"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"amount":40`)

	w = do(r, "POST", "/expenses", `{"description":"bad","amount":"ten","category":"Other"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "POST", "/expenses", `{"description":"neg","amount":-5,"category":"Other"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"field":"amount"`)

	w = do(r, "POST", "/expenses/sms", `{"text":"INR 1200 debited for electricity bill"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"category":"Bills"`)

	w = do(r, "POST", "/expenses/sms", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "GET", "/expenses?category=Bills", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "electricity")
	require.NotContains(t, w.Body.String(), "bus pass")

	w = do(r, "GET", "/expenses/stats/by-category", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{"_id":"Bills","total":1200},{"_id":"Transport","total":40}]`, w.Body.String())

	w = do(r, "GET", "/expenses/stats/last-seven-days", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"total":1240}`, w.Body.String())
}

func TestCreateExpenseDateFormats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	NewHandler(NewService(NewMemoryRepository())).Register(r)

	w := do(r, "POST", "/expenses", `{"date":"2024-06-01","description":"lunch","amount":120,"category":"Food"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"date":"2024-06-01T00:00:00Z"`)

	w = do(r, "POST", "/expenses", `{"date":"2024-06-02T18:30:00+02:00","description":"dinner","amount":30,"category":"Food"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"date":"2024-06-02T16:30:00Z"`)

	w = do(r, "POST", "/expenses", `{"date":"01/06/2024","description":"x","amount":1,"category":"Food"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, "GET", "/expenses", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "lunch")
	require.NotContains(t, w.Body.String(), `"description":"x"`)
}
