// /internal/model/product.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is an item listed in the shop.
type Product struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	PriceLabel  *string   `gorm:"size:100" json:"price_label,omitempty"` // e.g. "from $4 each"
	ImageURL    *string   `json:"image_url"`
	Stock       int       `gorm:"not null" json:"stock"`
	IsAvailable bool      `gorm:"not null" json:"is_available"`
	Tag         *string   `gorm:"size:100" json:"tag,omitempty"`
	TagEmoji    *string   `gorm:"size:16" json:"tag_emoji,omitempty"`
	SortOrder   int       `gorm:"not null;index" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// SoldOut reports whether the product can't be ordered right now.
func (p Product) SoldOut() bool {
	return p.Stock <= 0 || !p.IsAvailable
}

// ProductPatch carries the fields of a partial product update. Nil means "leave as is";
// an empty string on an optional text field clears it.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	PriceLabel  *string  `json:"price_label"`
	ImageURL    *string  `json:"image_url"`
	Stock       *int     `json:"stock"`
	IsAvailable *bool    `json:"is_available"`
	Tag         *string  `json:"tag"`
	TagEmoji    *string  `json:"tag_emoji"`
	SortOrder   *int     `json:"sort_order"`
}

// Columns returns the patch as a column/value map suitable for gorm's Updates.
func (p ProductPatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.PriceLabel != nil {
		cols["price_label"] = NullIfBlank(*p.PriceLabel)
	}
	if p.ImageURL != nil {
		cols["image_url"] = NullIfBlank(*p.ImageURL)
	}
	if p.Stock != nil {
		cols["stock"] = *p.Stock
	}
	if p.IsAvailable != nil {
		cols["is_available"] = *p.IsAvailable
	}
	if p.Tag != nil {
		cols["tag"] = NullIfBlank(*p.Tag)
	}
	if p.TagEmoji != nil {
		cols["tag_emoji"] = NullIfBlank(*p.TagEmoji)
	}
	if p.SortOrder != nil {
		cols["sort_order"] = *p.SortOrder
	}
	return cols
}

// Apply copies the supplied fields onto dst.
func (p ProductPatch) Apply(dst *Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.PriceLabel != nil {
		dst.PriceLabel = NullIfBlank(*p.PriceLabel)
	}
	if p.ImageURL != nil {
		dst.ImageURL = NullIfBlank(*p.ImageURL)
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
	if p.IsAvailable != nil {
		dst.IsAvailable = *p.IsAvailable
	}
	if p.Tag != nil {
		dst.Tag = NullIfBlank(*p.Tag)
	}
	if p.TagEmoji != nil {
		dst.TagEmoji = NullIfBlank(*p.TagEmoji)
	}
	if p.SortOrder != nil {
		dst.SortOrder = *p.SortOrder
	}
}

// NullIfBlank turns an empty (or whitespace only) string into nil.
func NullIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
