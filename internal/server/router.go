// Package server wires the handlers into a gin engine and runs it.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/cobbs-crumbs/internal/auth"
	"github.com/ericoliveiras/cobbs-crumbs/internal/handler"
	"github.com/ericoliveiras/cobbs-crumbs/internal/logger"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
	"github.com/ericoliveiras/cobbs-crumbs/internal/store"
	"github.com/ericoliveiras/cobbs-crumbs/internal/upload"
)

// Deps is everything the routes need.
type Deps struct {
	Store    store.Store
	Sessions *auth.Sessions
	Images   *upload.DiskStorage
	Defaults model.SiteContent
	Demo     bool
	Log      *zap.Logger
}

// NewRouter builds the full HTTP surface: the public API, the admin API under
// /api/admin, uploaded images and the health probe.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logger.Middleware(d.Log))

	homeHandler := &handler.HomeHandler{Store: d.Store, Defaults: d.Defaults, Demo: d.Demo, Log: d.Log}
	orderHandler := &handler.OrderHandler{Store: d.Store, Log: d.Log}
	authHandler := &handler.AuthHandler{Store: d.Store, Sessions: d.Sessions, Demo: d.Demo, Log: d.Log}
	adminHandler := &handler.AdminHandler{Store: d.Store, Images: d.Images, Log: d.Log}

	router.GET("/healthz", homeHandler.Health)
	router.Static(upload.URLPrefix, d.Images.Dir)

	api := router.Group("/api")
	api.GET("/products", homeHandler.ListProducts)
	api.GET("/featured", homeHandler.ListFeatured)
	api.GET("/content", homeHandler.GetContent)
	api.POST("/orders", orderHandler.PlaceOrder)

	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)
	admin.POST("/logout", authHandler.Logout)
	admin.GET("/check", authHandler.Check)

	protected := admin.Group("", auth.Required())
	{
		protected.GET("/products", adminHandler.ListProducts)
		protected.POST("/products", adminHandler.CreateProduct)
		protected.PATCH("/products", adminHandler.UpdateProduct)
		protected.DELETE("/products", adminHandler.DeleteProduct)

		protected.GET("/featured", adminHandler.ListFeatured)
		protected.POST("/featured", adminHandler.CreateFeatured)
		protected.PATCH("/featured", adminHandler.UpdateFeatured)
		protected.DELETE("/featured", adminHandler.DeleteFeatured)

		protected.GET("/orders", orderHandler.ListOrders)
		protected.PATCH("/orders", orderHandler.UpdateOrderStatus)

		protected.GET("/content", adminHandler.GetContent)
		protected.PATCH("/content", adminHandler.UpdateContent)

		protected.GET("/stats", adminHandler.Stats)
		protected.POST("/upload", adminHandler.Upload)
	}

	return router
}
