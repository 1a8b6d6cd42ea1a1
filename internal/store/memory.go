package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ericoliveiras/cobbs-crumbs/internal/fixtures"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
)

// DemoPassword unlocks the admin panel in demo mode.
const DemoPassword = "demo"

// MemoryStore keeps everything in process memory. It backs demo mode and is
// lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	products []model.Product
	orders   []model.Order
	featured []model.FeaturedItem
	content  model.SiteContent
	defaults model.SiteContent
	now      func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore seeds a store with a copy of set.
func NewMemoryStore(set fixtures.Set) *MemoryStore {
	return &MemoryStore{
		products: slices.Clone(set.Products),
		orders:   slices.Clone(set.Orders),
		featured: slices.Clone(set.Featured),
		content:  set.Content,
		defaults: set.Content,
		now:      time.Now,
	}
}

func (s *MemoryStore) ListProducts(_ context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.products)
	slices.SortStableFunc(out, func(a, b model.Product) int { return a.SortOrder - b.SortOrder })
	return out, nil
}

func (s *MemoryStore) CreateProduct(_ context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	stamp(&p.CreatedAt, &p.UpdatedAt, s.now())
	s.products = append(s.products, *p)
	return nil
}

func (s *MemoryStore) UpdateProduct(_ context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.products, func(p model.Product) bool { return p.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("update product %s: %w", id, ErrNotFound)
	}
	patch.Apply(&s.products[i])
	s.products[i].UpdatedAt = s.now()
	p := s.products[i]
	return &p, nil
}

func (s *MemoryStore) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = slices.DeleteFunc(s.products, func(p model.Product) bool { return p.ID == id })
	return nil
}

func (s *MemoryStore) ListFeatured(_ context.Context, visibleOnly bool) ([]model.FeaturedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.FeaturedItem, 0, len(s.featured))
	for _, f := range s.featured {
		if visibleOnly && !f.IsVisible {
			continue
		}
		out = append(out, f)
	}
	slices.SortStableFunc(out, func(a, b model.FeaturedItem) int { return a.SortOrder - b.SortOrder })
	return out, nil
}

func (s *MemoryStore) CreateFeatured(_ context.Context, f *model.FeaturedItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	stamp(&f.CreatedAt, &f.UpdatedAt, s.now())
	s.featured = append(s.featured, *f)
	return nil
}

func (s *MemoryStore) UpdateFeatured(_ context.Context, id string, patch model.FeaturedPatch) (*model.FeaturedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.featured, func(f model.FeaturedItem) bool { return f.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("update featured item %s: %w", id, ErrNotFound)
	}
	patch.Apply(&s.featured[i])
	s.featured[i].UpdatedAt = s.now()
	f := s.featured[i]
	return &f, nil
}

func (s *MemoryStore) DeleteFeatured(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.featured = slices.DeleteFunc(s.featured, func(f model.FeaturedItem) bool { return f.ID == id })
	return nil
}

func (s *MemoryStore) ListOrders(_ context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.orders)
	slices.SortStableFunc(out, func(a, b model.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = model.StatusPending
	}
	stamp(&o.CreatedAt, &o.UpdatedAt, s.now())
	s.orders = slices.Insert(s.orders, 0, *o)
	return nil
}

func (s *MemoryStore) UpdateOrderStatus(_ context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.orders, func(o model.Order) bool { return o.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("update order %s: %w", id, ErrNotFound)
	}
	s.orders[i].Status = status
	s.orders[i].UpdatedAt = s.now()
	o := s.orders[i]
	return &o, nil
}

func (s *MemoryStore) SiteContent(_ context.Context) (model.SiteContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content, nil
}

func (s *MemoryStore) UpdateSiteContent(_ context.Context, updates map[string]string) (model.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range updates {
		if value == "" {
			value = s.defaults.Get(key)
		}
		s.content.Set(key, value)
	}
	return s.content, nil
}

func (s *MemoryStore) AdminPassword(_ context.Context) (string, error) {
	return DemoPassword, nil
}

func (s *MemoryStore) Stats(_ context.Context) (model.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var pending int64
	for _, o := range s.orders {
		if o.Status == model.StatusPending {
			pending++
		}
	}
	return model.SummarizeProducts(s.products, pending), nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func stamp(created, updated *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = *created
	}
}
