// /internal/database/seed.go
package database

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ericoliveiras/cobbs-crumbs/internal/fixtures"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
)

// SeedAdminPassword stores the admin panel password, replacing any previous one.
func SeedAdminPassword(db *gorm.DB, password string, log *zap.Logger) error {
	if password == "" {
		return errors.New("admin password must not be empty")
	}
	setting := model.AdminSetting{SettingKey: model.SettingAdminPassword, SettingValue: password}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to store admin password: %w", err)
	}
	log.Info("admin password stored")
	return nil
}

// SeedContent inserts the default site copy for keys that have no row yet.
func SeedContent(db *gorm.DB, content model.SiteContent, log *zap.Logger) error {
	entries := make([]model.ContentEntry, 0, len(model.ContentKeys))
	for _, key := range model.ContentKeys {
		entries = append(entries, model.ContentEntry{ContentKey: key, ContentValue: content.Get(key)})
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries)
	if result.Error != nil {
		return fmt.Errorf("failed to seed site content: %w", result.Error)
	}
	log.Info("site content seeded", zap.Int64("inserted", result.RowsAffected))
	return nil
}

// SeedFixtures copies the demo catalog into an empty database. Tables that
// already have rows are left alone.
func SeedFixtures(db *gorm.DB, set fixtures.Set, log *zap.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(set.Products) > 0 {
			if err := tx.Create(&set.Products).Error; err != nil {
				return fmt.Errorf("failed to seed products: %w", err)
			}
			log.Info("products seeded", zap.Int("count", len(set.Products)))
		}

		if err := tx.Model(&model.FeaturedItem{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(set.Featured) > 0 {
			if err := tx.Create(&set.Featured).Error; err != nil {
				return fmt.Errorf("failed to seed featured items: %w", err)
			}
			log.Info("featured items seeded", zap.Int("count", len(set.Featured)))
		}
		return nil
	})
}
