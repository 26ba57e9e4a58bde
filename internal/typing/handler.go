package typing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/pkg/middleware"
)

type Handler struct {
	svc *Service
	ver middleware.Verifier
}

// NewHandler builds the handler; ver authenticates the protected routes.
func NewHandler(svc *Service, ver middleware.Verifier) *Handler {
	return &Handler{svc: svc, ver: ver}
}

// Register mounts /api/texts and /api/results on r.
func (h *Handler) Register(r gin.IRouter) {
	auth := middleware.AuthMiddleware(h.ver)

	api := r.Group("/api")
	api.GET("/texts", h.texts)
	api.POST("/texts", auth, h.addText)

	results := api.Group("/results", auth)
	results.POST("", h.saveResult)
	results.GET("", h.results)
	results.GET("/recent", h.recent)
	results.GET("/summary", h.summary)
}

func (h *Handler) texts(c *gin.Context) {
	texts, err := h.svc.Texts(c.Request.Context(), c.Query("difficulty"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, texts)
}

func (h *Handler) addText(c *gin.Context) {
	var in TextInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperr.Wrap(err, apperr.ErrValidation, "Invalid text payload"))
		return
	}
	t, err := h.svc.AddText(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) saveResult(c *gin.Context) {
	var in ResultInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperr.Wrap(err, apperr.ErrValidation, "Invalid result payload"))
		return
	}
	res, err := h.svc.SaveResult(c.Request.Context(), middleware.Subject(c), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) results(c *gin.Context) {
	list, err := h.svc.Results(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) recent(c *gin.Context) {
	list, err := h.svc.Recent(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) summary(c *gin.Context) {
	rows, err := h.svc.Summary(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
