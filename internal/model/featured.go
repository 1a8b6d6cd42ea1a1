package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultFeaturedEmoji is used when a featured item is created without one.
const DefaultFeaturedEmoji = "✨"

// FeaturedItem is a "this week" highlight on the home page.
type FeaturedItem struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Emoji       string    `gorm:"not null;size:16" json:"emoji"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	SortOrder   int       `gorm:"not null;index" json:"sort_order"`
	IsVisible   bool      `gorm:"not null" json:"is_visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *FeaturedItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type FeaturedPatch struct {
	Emoji       *string `json:"emoji"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
	IsVisible   *bool   `json:"is_visible"`
}

func (p FeaturedPatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.Emoji != nil {
		cols["emoji"] = *p.Emoji
	}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.SortOrder != nil {
		cols["sort_order"] = *p.SortOrder
	}
	if p.IsVisible != nil {
		cols["is_visible"] = *p.IsVisible
	}
	return cols
}

func (p FeaturedPatch) Apply(dst *FeaturedItem) {
	if p.Emoji != nil {
		dst.Emoji = *p.Emoji
	}
	if p.Title != nil {
		dst.Title = *p.Title
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.SortOrder != nil {
		dst.SortOrder = *p.SortOrder
	}
	if p.IsVisible != nil {
		dst.IsVisible = *p.IsVisible
	}
}
