package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/cobbs-crumbs/internal/logger"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
	"github.com/ericoliveiras/cobbs-crumbs/internal/store"
)

// ImageStore keeps uploaded product images and returns their public URL.
type ImageStore interface {
	Save(c *gin.Context, file *multipart.FileHeader) (string, error)
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PriceLabel  string  `json:"price_label"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	IsAvailable *bool   `json:"is_available"`
	Tag         string  `json:"tag"`
	TagEmoji    string  `json:"tag_emoji"`
	SortOrder   int     `json:"sort_order"`
}

type updateProductRequest struct {
	ID string `json:"id"`
	model.ProductPatch
}

type createFeaturedRequest struct {
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsVisible   *bool  `json:"is_visible"`
}

type updateFeaturedRequest struct {
	ID string `json:"id"`
	model.FeaturedPatch
}

// AdminHandler is the shop owner's back office: catalog, featured items,
// site copy, dashboard numbers and image uploads.
type AdminHandler struct {
	Store  store.Store
	Images ImageStore
	Log    *zap.Logger
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		failed(c, h.Log, "Failed to fetch products", err)
		return
	}
	c.JSON(http.StatusOK, list(products))
}

// CreateProduct adds a product. Missing fields get shop defaults: available,
// no stock, sorted first.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		badRequest(c, "Product name required")
		return
	}

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		PriceLabel:  model.NullIfBlank(req.PriceLabel),
		ImageURL:    model.NullIfBlank(req.ImageURL),
		Stock:       req.Stock,
		IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
		Tag:         model.NullIfBlank(req.Tag),
		TagEmoji:    model.NullIfBlank(req.TagEmoji),
		SortOrder:   req.SortOrder,
	}
	if err := h.Store.CreateProduct(c.Request.Context(), &product); err != nil {
		failed(c, h.Log, "Failed to create product", err)
		return
	}
	logger.FromContext(c, h.Log).Info("product created", zap.String("product_id", product.ID))
	c.JSON(http.StatusOK, product)
}

// UpdateProduct applies the fields present in the body to the product named by id.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.ID == "" {
		badRequest(c, "Product ID required")
		return
	}

	product, err := h.Store.UpdateProduct(c.Request.Context(), req.ID, req.ProductPatch)
	if errors.Is(err, store.ErrNotFound) {
		notFound(c, "Product not found")
		return
	}
	if err != nil {
		failed(c, h.Log, "Failed to update product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		badRequest(c, "Product ID required")
		return
	}
	if err := h.Store.DeleteProduct(c.Request.Context(), id); err != nil {
		failed(c, h.Log, "Failed to delete product", err)
		return
	}
	logger.FromContext(c, h.Log).Info("product deleted", zap.String("product_id", id))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListFeatured returns hidden items too, unlike the public endpoint.
func (h *AdminHandler) ListFeatured(c *gin.Context) {
	items, err := h.Store.ListFeatured(c.Request.Context(), false)
	if err != nil {
		failed(c, h.Log, "Failed to fetch featured items", err)
		return
	}
	c.JSON(http.StatusOK, list(items))
}

func (h *AdminHandler) CreateFeatured(c *gin.Context) {
	var req createFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		badRequest(c, "Featured item title required")
		return
	}

	item := model.FeaturedItem{
		Emoji:       req.Emoji,
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsVisible:   req.IsVisible == nil || *req.IsVisible,
	}
	if item.Emoji == "" {
		item.Emoji = model.DefaultFeaturedEmoji
	}
	if err := h.Store.CreateFeatured(c.Request.Context(), &item); err != nil {
		failed(c, h.Log, "Failed to create featured item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) UpdateFeatured(c *gin.Context) {
	var req updateFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.ID == "" {
		badRequest(c, "Featured item ID required")
		return
	}

	item, err := h.Store.UpdateFeatured(c.Request.Context(), req.ID, req.FeaturedPatch)
	if errors.Is(err, store.ErrNotFound) {
		notFound(c, "Featured item not found")
		return
	}
	if err != nil {
		failed(c, h.Log, "Failed to update featured item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *AdminHandler) DeleteFeatured(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		badRequest(c, "Featured item ID required")
		return
	}
	if err := h.Store.DeleteFeatured(c.Request.Context(), id); err != nil {
		failed(c, h.Log, "Failed to delete featured item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) GetContent(c *gin.Context) {
	content, err := h.Store.SiteContent(c.Request.Context())
	if err != nil {
		failed(c, h.Log, "Failed to fetch content", err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// UpdateContent stores the known text keys found in the body. Unknown keys and
// non-text values are ignored.
func (h *AdminHandler) UpdateContent(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	updates := make(map[string]string, len(body))
	for key, value := range body {
		s, ok := value.(string)
		if ok && model.IsContentKey(key) {
			updates[key] = s
		}
	}

	content, err := h.Store.UpdateSiteContent(c.Request.Context(), updates)
	if err != nil {
		failed(c, h.Log, "Failed to update content", err)
		return
	}
	logger.FromContext(c, h.Log).Info("site content updated", zap.Int("keys", len(updates)))
	c.JSON(http.StatusOK, content)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Store.Stats(c.Request.Context())
	if err != nil {
		failed(c, h.Log, "Failed to fetch stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Upload stores the multipart "file" field and returns where it is served.
func (h *AdminHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "No file provided")
		return
	}
	url, err := h.Images.Save(c, file)
	if err != nil {
		failed(c, h.Log, "Failed to upload file", err)
		return
	}
	logger.FromContext(c, h.Log).Info("image uploaded", zap.String("url", url), zap.Int64("size", file.Size))
	c.JSON(http.StatusOK, gin.H{"url": url})
}
