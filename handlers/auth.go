package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/tokens"
	"github.com/demoapps/go-services/internal/users"
	"github.com/demoapps/go-services/pkg/logger"
	"github.com/demoapps/go-services/pkg/middleware"
)

// AuthHandler holds dependencies
type AuthHandler struct {
	usersSvc *users.Service
	issuer   *tokens.Issuer
}

func NewAuthHandler(u *users.Service, issuer *tokens.Issuer) *AuthHandler {
	return &AuthHandler{usersSvc: u, issuer: issuer}
}

// Register routes /auth/register, /auth/login and /users/me on rg.
func (h *AuthHandler) Register(rg gin.IRouter) {
	a := rg.Group("/auth")
	a.POST("/register", h.SignUp)
	a.POST("/login", h.Login)
	rg.GET("/users/me", middleware.AuthMiddleware(h.issuer), h.Me)
}

// SignUp creates an account and returns a token for it.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req users.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Wrap(err, apperr.ErrBadRequest, "Invalid request body"))
		return
	}
	u, err := h.usersSvc.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.respondToken(c, http.StatusCreated, u.ID)
}

// Login checks credentials and returns a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req users.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.ErrInvalidCredentials)
		return
	}
	u, err := h.usersSvc.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.respondToken(c, http.StatusOK, u.ID)
}

// Me returns the authenticated user without the password hash.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.usersSvc.Me(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) respondToken(c *gin.Context, status int, userID string) {
	token, err := h.issuer.Generate(userID)
	if err != nil {
		logger.Errorf("failed to sign token: %v", err)
		_ = c.Error(apperr.Wrap(err, apperr.ErrInternal, "failed to create access token"))
		return
	}
	c.JSON(status, gin.H{"token": token})
}
