package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
)

// GormStore is the database backed Store.
type GormStore struct {
	db       *gorm.DB
	defaults model.SiteContent
}

var _ Store = (*GormStore)(nil)

// NewGormStore wraps db. defaults fill content keys that have no stored value.
func NewGormStore(db *gorm.DB, defaults model.SiteContent) *GormStore {
	return &GormStore{db: db, defaults: defaults}
}

func (s *GormStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.WithContext(ctx).Order("sort_order asc").Order("created_at asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, p *model.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	var p model.Product
	if err := s.update(ctx, &p, id, patch.Columns()); err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return &p, nil
}

func (s *GormStore) DeleteProduct(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}).Error; err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

func (s *GormStore) ListFeatured(ctx context.Context, visibleOnly bool) ([]model.FeaturedItem, error) {
	q := s.db.WithContext(ctx).Order("sort_order asc").Order("created_at asc")
	if visibleOnly {
		q = q.Where("is_visible = ?", true)
	}
	var items []model.FeaturedItem
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list featured items: %w", err)
	}
	return items, nil
}

func (s *GormStore) CreateFeatured(ctx context.Context, f *model.FeaturedItem) error {
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("create featured item: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateFeatured(ctx context.Context, id string, patch model.FeaturedPatch) (*model.FeaturedItem, error) {
	var f model.FeaturedItem
	if err := s.update(ctx, &f, id, patch.Columns()); err != nil {
		return nil, fmt.Errorf("update featured item %s: %w", id, err)
	}
	return &f, nil
}

func (s *GormStore) DeleteFeatured(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FeaturedItem{}).Error; err != nil {
		return fmt.Errorf("delete featured item %s: %w", id, err)
	}
	return nil
}

func (s *GormStore) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *GormStore) CreateOrder(ctx context.Context, o *model.Order) error {
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	var o model.Order
	if err := s.update(ctx, &o, id, map[string]any{"status": status}); err != nil {
		return nil, fmt.Errorf("update order %s: %w", id, err)
	}
	return &o, nil
}

func (s *GormStore) SiteContent(ctx context.Context) (model.SiteContent, error) {
	var entries []model.ContentEntry
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return model.SiteContent{}, fmt.Errorf("load site content: %w", err)
	}
	return model.MergeContent(s.defaults, entries), nil
}

func (s *GormStore) UpdateSiteContent(ctx context.Context, updates map[string]string) (model.SiteContent, error) {
	entries := make([]model.ContentEntry, 0, len(updates))
	for _, key := range model.ContentKeys {
		if v, ok := updates[key]; ok {
			entries = append(entries, model.ContentEntry{ContentKey: key, ContentValue: v})
		}
	}
	if len(entries) > 0 {
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"content_value", "updated_at"}),
		}).Create(&entries).Error
		if err != nil {
			return model.SiteContent{}, fmt.Errorf("update site content: %w", err)
		}
	}
	return s.SiteContent(ctx)
}

func (s *GormStore) AdminPassword(ctx context.Context) (string, error) {
	var setting model.AdminSetting
	err := s.db.WithContext(ctx).Where("setting_key = ?", model.SettingAdminPassword).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("admin password: %w", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("admin password: %w", err)
	}
	return setting.SettingValue, nil
}

func (s *GormStore) Stats(ctx context.Context) (model.Stats, error) {
	var pending int64
	err := s.db.WithContext(ctx).Model(&model.Order{}).Where("status = ?", model.StatusPending).Count(&pending).Error
	if err != nil {
		return model.Stats{}, fmt.Errorf("count pending orders: %w", err)
	}
	var products []model.Product
	if err := s.db.WithContext(ctx).Select("stock", "is_available").Find(&products).Error; err != nil {
		return model.Stats{}, fmt.Errorf("load product stock: %w", err)
	}
	return model.SummarizeProducts(products, pending), nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// update applies cols to the row with id and reloads it into dst.
func (s *GormStore) update(ctx context.Context, dst any, id string, cols map[string]any) error {
	db := s.db.WithContext(ctx)
	if len(cols) > 0 {
		result := db.Model(dst).Where("id = ?", id).Updates(cols)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
	}
	err := db.Where("id = ?", id).First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
