package expenses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demoapps/go-services/internal/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the /expenses routes on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/expenses")
	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/sms", h.createFromSMS)
	g.GET("/stats/by-category", h.byCategory)
	g.GET("/stats/last-seven-days", h.lastSevenDays)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperr.Wrap(err, apperr.ErrValidation, "Invalid expense payload"))
		return
	}
	e, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) createFromSMS(c *gin.Context) {
	var in struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(ErrTextRequired)
		return
	}
	e, err := h.svc.CreateFromSMS(c.Request.Context(), in.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) byCategory(c *gin.Context) {
	rows, err := h.svc.ByCategory(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) lastSevenDays(c *gin.Context) {
	total, err := h.svc.LastSevenDays(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}
