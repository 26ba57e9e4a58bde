package cardgame

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

// Register mounts /api/game, /api/games and /api/stats on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/api")
	g.POST("/game", h.record)
	g.GET("/games", h.games)
	g.GET("/stats", h.stats)
}

func (h *Handler) record(c *gin.Context) {
	var in struct {
		Result Result `json:"result"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(ErrInvalidResult)
		return
	}
	if _, err := h.svc.Record(c.Request.Context(), in.Result); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Saved"})
}

func (h *Handler) games(c *gin.Context) {
	games, err := h.svc.Games(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *Handler) stats(c *gin.Context) {
	st, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, st)
}
