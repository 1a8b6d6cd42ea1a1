// Package store persists the storefront records. GormStore talks to
// PostgreSQL; MemoryStore serves the demo catalog when no database is set up.
package store

import (
	"context"
	"errors"

	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
)

// ErrNotFound is returned when an update targets an id that does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the set of queries the HTTP handlers need.
type Store interface {
	// ListProducts returns every product ordered by sort_order.
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error)
	// DeleteProduct removes the product; deleting an unknown id is not an error.
	DeleteProduct(ctx context.Context, id string) error

	// ListFeatured returns featured items ordered by sort_order, optionally
	// only the visible ones.
	ListFeatured(ctx context.Context, visibleOnly bool) ([]model.FeaturedItem, error)
	CreateFeatured(ctx context.Context, f *model.FeaturedItem) error
	UpdateFeatured(ctx context.Context, id string, patch model.FeaturedPatch) (*model.FeaturedItem, error)
	DeleteFeatured(ctx context.Context, id string) error

	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]model.Order, error)
	CreateOrder(ctx context.Context, o *model.Order) error
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)

	// SiteContent returns the stored copy merged over the defaults.
	SiteContent(ctx context.Context) (model.SiteContent, error)
	// UpdateSiteContent stores the given known keys and returns the merged result.
	UpdateSiteContent(ctx context.Context, updates map[string]string) (model.SiteContent, error)

	AdminPassword(ctx context.Context) (string, error)
	Stats(ctx context.Context) (model.Stats, error)
	Ping(ctx context.Context) error
}
