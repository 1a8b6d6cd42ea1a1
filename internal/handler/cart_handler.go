package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/cobbs-crumbs/internal/estimate"
	"github.com/ericoliveiras/cobbs-crumbs/internal/logger"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
	"github.com/ericoliveiras/cobbs-crumbs/internal/store"
)

// OrderRequest mirrors the JSON posted by the order form.
type OrderRequest struct {
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone"`
	PreferredContact string `json:"preferred_contact"`
	OrderDetails     string `json:"order_details"`
	Allergies        string `json:"allergies"`
	Notes            string `json:"notes"`
}

// OrderView is an order as listed in the admin panel.
type OrderView struct {
	model.Order
	EstimatedTotal *float64 `json:"estimated_total"`
}

type orderStatusRequest struct {
	ID     string            `json:"id"`
	Status model.OrderStatus `json:"status"`
}

// OrderHandler takes orders from the storefront and lets the admin track them.
type OrderHandler struct {
	Store store.Store
	Log   *zap.Logger
}

// PlaceOrder records a new pending order. Nothing is reserved or charged.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.OrderDetails) == "" {
		badRequest(c, "Name and order details are required")
		return
	}

	contact := model.ContactWhatsApp
	if req.PreferredContact != "" {
		contact = model.ContactChannel(req.PreferredContact)
		if !contact.Valid() {
			badRequest(c, "Invalid preferred contact")
			return
		}
	}

	order := model.Order{
		CustomerName:     req.CustomerName,
		CustomerEmail:    model.NullIfBlank(req.CustomerEmail),
		CustomerPhone:    model.NullIfBlank(req.CustomerPhone),
		PreferredContact: contact,
		OrderDetails:     req.OrderDetails,
		Allergies:        model.NullIfBlank(req.Allergies),
		Notes:            model.NullIfBlank(req.Notes),
		Status:           model.StatusPending,
	}
	if err := h.Store.CreateOrder(c.Request.Context(), &order); err != nil {
		failed(c, h.Log, "Failed to create order", err)
		return
	}

	logger.FromContext(c, h.Log).Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("preferred_contact", string(order.PreferredContact)))
	c.JSON(http.StatusOK, order)
}

// ListOrders returns every order, newest first, with a best effort total
// estimated from the current catalog.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.Store.ListOrders(ctx)
	if err != nil {
		failed(c, h.Log, "Failed to fetch orders", err)
		return
	}
	products, err := h.Store.ListProducts(ctx)
	if err != nil {
		failed(c, h.Log, "Failed to fetch orders", err)
		return
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, OrderView{Order: o, EstimatedTotal: estimate.Total(o.OrderDetails, products)})
	}
	c.JSON(http.StatusOK, views)
}

// UpdateOrderStatus moves an order to any status; transitions are not restricted.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.ID == "" {
		badRequest(c, "Order ID required")
		return
	}
	if !req.Status.Valid() {
		badRequest(c, "Invalid status")
		return
	}

	order, err := h.Store.UpdateOrderStatus(c.Request.Context(), req.ID, req.Status)
	if errors.Is(err, store.ErrNotFound) {
		notFound(c, "Order not found")
		return
	}
	if err != nil {
		failed(c, h.Log, "Failed to update order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}
