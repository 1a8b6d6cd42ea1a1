package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"

	"github.com/ericoliveiras/cobbs-crumbs/internal/database"
	"github.com/ericoliveiras/cobbs-crumbs/internal/fixtures"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
)

func newSQLiteStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := database.Open(sqlite.Open(dsn), database.Options{MaxOpenConns: 1}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, zap.NewNop()))
	t.Cleanup(func() { _ = database.Close(db) })
	return NewGormStore(db, model.DefaultSiteContent())
}

func newEmptyMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()
	return NewMemoryStore(fixtures.Set{Content: model.DefaultSiteContent()})
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"gorm":   func(t *testing.T) Store { return newSQLiteStore(t) },
		"memory": func(t *testing.T) Store { return newEmptyMemoryStore(t) },
	}
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("products", func(t *testing.T) { testProducts(t, newStore(t)) })
			t.Run("featured", func(t *testing.T) { testFeatured(t, newStore(t)) })
			t.Run("orders", func(t *testing.T) { testOrders(t, newStore(t)) })
			t.Run("content", func(t *testing.T) { testContent(t, newStore(t)) })
			t.Run("stats", func(t *testing.T) { testStats(t, newStore(t)) })
		})
	}
}

func testProducts(t *testing.T, s Store) {
	ctx := context.Background()
	label := "$18 pan"

	brownies := &model.Product{Name: "Ghost Brownie Squares", Price: 18, PriceLabel: &label, Stock: 4, IsAvailable: true, SortOrder: 2}
	truffles := &model.Product{Name: "Birthday Sprinkle Truffles", Price: 10, Stock: 5, IsAvailable: false, SortOrder: 1}
	require.NoError(t, s.CreateProduct(ctx, brownies))
	require.NoError(t, s.CreateProduct(ctx, truffles))
	assert.NotEmpty(t, brownies.ID)
	assert.False(t, brownies.CreatedAt.IsZero())

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, truffles.ID, products[0].ID, "sorted by sort_order")
	assert.False(t, products[0].IsAvailable, "false availability is stored as given")
	require.NotNil(t, products[1].PriceLabel)
	assert.Equal(t, "$18 pan", *products[1].PriceLabel)

	stock := 0
	blank := ""
	updated, err := s.UpdateProduct(ctx, brownies.ID, model.ProductPatch{Stock: &stock, PriceLabel: &blank})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)
	assert.Nil(t, updated.PriceLabel)
	assert.Equal(t, "Ghost Brownie Squares", updated.Name)

	unchanged, err := s.UpdateProduct(ctx, brownies.ID, model.ProductPatch{})
	require.NoError(t, err)
	assert.Equal(t, 0, unchanged.Stock)

	_, err = s.UpdateProduct(ctx, "missing", model.ProductPatch{Stock: &stock})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateProduct(ctx, "missing", model.ProductPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteProduct(ctx, brownies.ID))
	require.NoError(t, s.DeleteProduct(ctx, "missing"), "deleting an unknown id is not an error")

	products, err = s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, truffles.ID, products[0].ID)
}

func testFeatured(t *testing.T, s Store) {
	ctx := context.Background()

	hidden := &model.FeaturedItem{Emoji: "👻", Title: "Ghost brownies", SortOrder: 1, IsVisible: false}
	shown := &model.FeaturedItem{Emoji: "🎂", Title: "Birthday boxes", SortOrder: 2, IsVisible: true}
	require.NoError(t, s.CreateFeatured(ctx, hidden))
	require.NoError(t, s.CreateFeatured(ctx, shown))

	all, err := s.ListFeatured(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, hidden.ID, all[0].ID)

	visible, err := s.ListFeatured(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, shown.ID, visible[0].ID)

	yes := true
	title := "Gooey ghost brownies"
	updated, err := s.UpdateFeatured(ctx, hidden.ID, model.FeaturedPatch{IsVisible: &yes, Title: &title})
	require.NoError(t, err)
	assert.True(t, updated.IsVisible)
	assert.Equal(t, "Gooey ghost brownies", updated.Title)
	assert.Equal(t, "👻", updated.Emoji)

	_, err = s.UpdateFeatured(ctx, "missing", model.FeaturedPatch{IsVisible: &yes})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteFeatured(ctx, shown.ID))
	visible, err = s.ListFeatured(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, hidden.ID, visible[0].ID)
}

func testOrders(t *testing.T, s Store) {
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	email := "sarah@example.com"

	older := &model.Order{CustomerName: "Sarah", CustomerEmail: &email, PreferredContact: model.ContactEmail, OrderDetails: "2x Ghost Brownie Squares", CreatedAt: base}
	newer := &model.Order{CustomerName: "Mike", PreferredContact: model.ContactText, OrderDetails: "1x Tarts", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, s.CreateOrder(ctx, older))
	require.NoError(t, s.CreateOrder(ctx, newer))
	assert.Equal(t, model.StatusPending, older.Status)

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID, "newest first")
	assert.Equal(t, model.StatusPending, orders[1].Status)
	require.NotNil(t, orders[1].CustomerEmail)
	assert.Nil(t, orders[0].CustomerEmail)

	updated, err := s.UpdateOrderStatus(ctx, older.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, updated.Status)
	assert.Equal(t, "Sarah", updated.CustomerName)

	_, err = s.UpdateOrderStatus(ctx, "missing", model.StatusCancelled)
	assert.ErrorIs(t, err, ErrNotFound)
}

func testContent(t *testing.T, s Store) {
	ctx := context.Background()
	defaults := model.DefaultSiteContent()

	content, err := s.SiteContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaults, content)

	content, err = s.UpdateSiteContent(ctx, map[string]string{"site_title": "Crumbs & Co", "hero_note": "Closed for holidays"})
	require.NoError(t, err)
	assert.Equal(t, "Crumbs & Co", content.SiteTitle)
	assert.Equal(t, "Closed for holidays", content.HeroNote)
	assert.Equal(t, defaults.Tagline, content.Tagline)

	content, err = s.UpdateSiteContent(ctx, map[string]string{"site_title": "Crumbs Bakery", "hero_note": ""})
	require.NoError(t, err)
	assert.Equal(t, "Crumbs Bakery", content.SiteTitle)
	assert.Equal(t, defaults.HeroNote, content.HeroNote, "blank values fall back to the default")

	content, err = s.SiteContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Crumbs Bakery", content.SiteTitle)
}

func testStats(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.CreateProduct(ctx, &model.Product{Name: "A", Stock: 3, IsAvailable: true}))
	require.NoError(t, s.CreateProduct(ctx, &model.Product{Name: "B", Stock: 0, IsAvailable: true}))
	require.NoError(t, s.CreateProduct(ctx, &model.Product{Name: "C", Stock: 2, IsAvailable: false}))
	require.NoError(t, s.CreateOrder(ctx, &model.Order{CustomerName: "x", PreferredContact: model.ContactText, OrderDetails: "1x A"}))
	done := &model.Order{CustomerName: "y", PreferredContact: model.ContactText, OrderDetails: "1x B"}
	require.NoError(t, s.CreateOrder(ctx, done))
	_, err := s.UpdateOrderStatus(ctx, done.ID, model.StatusCompleted)
	require.NoError(t, err)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{PendingOrders: 1, TotalProducts: 3, AvailableProducts: 1, SoldOutProducts: 2}, stats)
	assert.NoError(t, s.Ping(ctx))
}

func TestGormStoreAdminPassword(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	_, err := s.AdminPassword(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, database.SeedAdminPassword(s.db, "first", zap.NewNop()))
	require.NoError(t, database.SeedAdminPassword(s.db, "cupcakes", zap.NewNop()))

	password, err := s.AdminPassword(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cupcakes", password)
}

func TestMemoryStoreDemoData(t *testing.T) {
	set, err := fixtures.Default(time.Now())
	require.NoError(t, err)
	s := NewMemoryStore(set)
	ctx := context.Background()

	password, err := s.AdminPassword(ctx)
	require.NoError(t, err)
	assert.Equal(t, DemoPassword, password)

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "order-1", orders[0].ID)

	placed := &model.Order{CustomerName: "Jo", PreferredContact: model.ContactInstagram, OrderDetails: "1x Little Dessert Tarts"}
	require.NoError(t, s.CreateOrder(ctx, placed))
	orders, err = s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 4)
	assert.Equal(t, placed.ID, orders[0].ID)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Stats{PendingOrders: 2, TotalProducts: 4, AvailableProducts: 3, SoldOutProducts: 1}, stats)

	// The fixture set must not be mutated through the store.
	require.NoError(t, s.DeleteProduct(ctx, "demo-1"))
	assert.Len(t, set.Products, 4)
	assert.Equal(t, "demo-1", set.Products[0].ID)
}
