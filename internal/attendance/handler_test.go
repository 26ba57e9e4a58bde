package attendance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/demoapps/go-services/pkg/middleware"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	NewHandler(NewService(NewMemoryRepository())).Register(r)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStudentsHTTP(t *testing.T) {
	r := newRouter()

	w := do(r, "POST", "/students", `{"name":" Linus "}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var st Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	require.Equal(t, "Linus", st.Name)
	require.Equal(t, Given, st.Attendance)
	require.Contains(t, w.Body.String(), `"_id":"`+st.ID+`"`)

	w = do(r, "PUT", "/students/"+st.ID+"/attendance", `{"attendance":"Present"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"attendance":"Present"`)

	w = do(r, "GET", "/students", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = do(r, "GET", "/students/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[{"attendance":"Present","count":1},{"attendance":"Absent","count":0},{"attendance":"Given","count":0}]`, w.Body.String())
}

func TestStudentsHTTPErrors(t *testing.T) {
	r := newRouter()

	w := do(r, "POST", "/students", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Student name is required")

	w = do(r, "POST", "/students", `{"name":42}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Student name is required")

	w = do(r, "PUT", "/students/000000000000000000000000/attendance", `{"attendance":"Maybe"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid attendance status")

	w = do(r, "PUT", "/students/abc/attendance", `{"attendance":"Absent"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid student ID format")

	w = do(r, "PUT", "/students/000000000000000000000000/attendance", `{"attendance":"Absent"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Student not found")
}
