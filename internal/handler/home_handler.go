package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/cobbs-crumbs/internal/logger"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
	"github.com/ericoliveiras/cobbs-crumbs/internal/store"
)

// HealthTimeout bounds the store ping done by Health.
const HealthTimeout = 2 * time.Second

// HomeHandler serves the public storefront data.
type HomeHandler struct {
	Store    store.Store
	Defaults model.SiteContent
	Demo     bool
	Log      *zap.Logger
}

// ListProducts returns the whole catalog, sold out items included.
func (h *HomeHandler) ListProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		failed(c, h.Log, "Failed to fetch products", err)
		return
	}
	c.JSON(http.StatusOK, list(products))
}

// ListFeatured returns the visible "this week" items.
func (h *HomeHandler) ListFeatured(c *gin.Context) {
	items, err := h.Store.ListFeatured(c.Request.Context(), true)
	if err != nil {
		failed(c, h.Log, "Failed to fetch featured items", err)
		return
	}
	c.JSON(http.StatusOK, list(items))
}

// GetContent returns the site copy. The storefront always renders, so a store
// failure falls back to the built-in copy.
func (h *HomeHandler) GetContent(c *gin.Context) {
	content, err := h.Store.SiteContent(c.Request.Context())
	if err != nil {
		logger.FromContext(c, h.Log).Warn("site content unavailable, serving defaults", zap.Error(err))
		content = h.Defaults
	}
	c.JSON(http.StatusOK, content)
}

func (h *HomeHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), HealthTimeout)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		logger.FromContext(c, h.Log).Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "demo": h.Demo})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "demo": h.Demo})
}
