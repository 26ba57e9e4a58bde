package mousetracker

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demoapps/go-services/internal/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the /api/mouse-events routes on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/api/mouse-events")
	g.GET("", h.list)
	g.POST("", h.save)
	g.GET("/heatmap", h.heatmap)
}

func (h *Handler) save(c *gin.Context) {
	var in struct {
		Events json.RawMessage `json:"events"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(ErrNotArray)
		return
	}
	if raw := bytes.TrimSpace(in.Events); len(raw) == 0 || raw[0] != '[' {
		_ = c.Error(ErrNotArray)
		return
	}
	var batch []EventInput
	if err := json.Unmarshal(in.Events, &batch); err != nil {
		_ = c.Error(apperr.Wrap(err, apperr.ErrValidation, "Invalid event payload"))
		return
	}
	saved, err := h.svc.SaveBatch(c.Request.Context(), batch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) list(c *gin.Context) {
	events, err := h.svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) heatmap(c *gin.Context) {
	cell := DefaultCell
	if v := c.Query("cell"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			_ = c.Error(ErrInvalidCell)
			return
		}
		cell = n
	}
	cells, err := h.svc.Heatmap(c.Request.Context(), cell)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cells)
}
