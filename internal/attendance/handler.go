package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the /students routes on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/students")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/summary", h.summary)
	g.PUT("/:id/attendance", h.updateAttendance)
}

func (h *Handler) list(c *gin.Context) {
	students, err := h.svc.List(c.Request.Context(), Status(c.Query("attendance")))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(ErrNameRequired)
		return
	}
	st, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (h *Handler) updateAttendance(c *gin.Context) {
	var in struct {
		Attendance Status `json:"attendance"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(ErrInvalidStatus)
		return
	}
	st, err := h.svc.UpdateAttendance(c.Request.Context(), c.Param("id"), in.Attendance)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) summary(c *gin.Context) {
	rows, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
