package dictionary

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

// Register mounts the /dictionary routes on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/dictionary")
	g.POST("", h.add)
	g.POST("/bulk", h.bulk)
	g.GET("/check/:word", h.check)
	g.GET("/histogram", h.histogram)
}

func (h *Handler) add(c *gin.Context) {
	var in struct {
		Word string `json:"word"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(ErrWordRequired)
		return
	}
	w, err := h.svc.Add(c.Request.Context(), in.Word)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *Handler) bulk(c *gin.Context) {
	var in struct {
		Words any `json:"words"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(ErrInvalidWords)
		return
	}
	words, err := CleanWords(in.Words)
	if err != nil {
		_ = c.Error(err)
		return
	}
	res, err := h.svc.Bulk(c.Request.Context(), words)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) check(c *gin.Context) {
	res, err := h.svc.Check(c.Request.Context(), c.Param("word"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if res.Exists {
		c.JSON(http.StatusOK, gin.H{"exists": true, "word": res.Word})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": false, "suggestions": res.Suggestions})
}

func (h *Handler) histogram(c *gin.Context) {
	hist, err := h.svc.Histogram(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, hist)
}
