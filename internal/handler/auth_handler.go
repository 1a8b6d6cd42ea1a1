package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/cobbs-crumbs/internal/auth"
	"github.com/ericoliveiras/cobbs-crumbs/internal/logger"
	"github.com/ericoliveiras/cobbs-crumbs/internal/store"
)

type loginRequest struct {
	Password string `json:"password"`
}

// AuthHandler logs the shop owner in and out of the admin panel.
type AuthHandler struct {
	Store    store.Store
	Sessions *auth.Sessions
	Demo     bool
	Log      *zap.Logger
}

// Login compares the submitted password with the stored one and starts a
// session on a match.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.Password == "" {
		badRequest(c, "Password required")
		return
	}

	stored, err := h.Store.AdminPassword(c.Request.Context())
	if err != nil {
		failed(c, h.Log, "Authentication failed", err)
		return
	}

	if req.Password != stored {
		logger.FromContext(c, h.Log).Warn("admin login rejected", zap.String("client_ip", c.ClientIP()))
		msg := "Invalid password"
		if h.Demo {
			msg = `Invalid password. Try "demo" for demo mode!`
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}

	h.Sessions.Start(c)
	logger.FromContext(c, h.Log).Info("admin logged in")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.Sessions.End(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Check tells the admin panel whether it already has a session.
func (h *AuthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": auth.Authenticated(c)})
}
