// Package fixtures holds the demo catalog used when no database is configured
// and by the seed command.
package fixtures

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
)

//go:embed fixtures.yaml
var defaultYAML []byte

// Set is a loaded fixture collection.
type Set struct {
	Products []model.Product
	Orders   []model.Order
	Featured []model.FeaturedItem
	Content  model.SiteContent
}

type fileProduct struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	PriceLabel  string  `yaml:"price_label"`
	ImageURL    string  `yaml:"image_url"`
	Stock       int     `yaml:"stock"`
	IsAvailable bool    `yaml:"is_available"`
	Tag         string  `yaml:"tag"`
	TagEmoji    string  `yaml:"tag_emoji"`
	SortOrder   int     `yaml:"sort_order"`
}

type fileOrder struct {
	ID               string `yaml:"id"`
	CustomerName     string `yaml:"customer_name"`
	CustomerEmail    string `yaml:"customer_email"`
	CustomerPhone    string `yaml:"customer_phone"`
	PreferredContact string `yaml:"preferred_contact"`
	OrderDetails     string `yaml:"order_details"`
	Allergies        string `yaml:"allergies"`
	Notes            string `yaml:"notes"`
	Status           string `yaml:"status"`
	CreatedAgo       string `yaml:"created_ago"`
	UpdatedAgo       string `yaml:"updated_ago"`
}

type fileFeatured struct {
	ID          string `yaml:"id"`
	Emoji       string `yaml:"emoji"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	SortOrder   int    `yaml:"sort_order"`
	IsVisible   bool   `yaml:"is_visible"`
}

type file struct {
	Products []fileProduct      `yaml:"products"`
	Orders   []fileOrder        `yaml:"orders"`
	Featured []fileFeatured     `yaml:"featured"`
	Content  *model.SiteContent `yaml:"content"`
}

// Default returns a fresh copy of the embedded demo catalog, with timestamps
// relative to now.
func Default(now time.Time) (Set, error) {
	return Parse(defaultYAML, now)
}

// Parse decodes a fixture document. Missing content falls back to
// model.DefaultSiteContent; a partial content block is merged over it.
func Parse(data []byte, now time.Time) (Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Set{}, fmt.Errorf("failed to parse fixtures: %w", err)
	}

	set := Set{Content: model.DefaultSiteContent()}
	if f.Content != nil {
		for _, key := range model.ContentKeys {
			if v := f.Content.Get(key); v != "" {
				set.Content.Set(key, v)
			}
		}
	}

	for _, p := range f.Products {
		set.Products = append(set.Products, model.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			PriceLabel:  model.NullIfBlank(p.PriceLabel),
			ImageURL:    model.NullIfBlank(p.ImageURL),
			Stock:       p.Stock,
			IsAvailable: p.IsAvailable,
			Tag:         model.NullIfBlank(p.Tag),
			TagEmoji:    model.NullIfBlank(p.TagEmoji),
			SortOrder:   p.SortOrder,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	for _, o := range f.Orders {
		created, err := ago(now, o.CreatedAgo)
		if err != nil {
			return Set{}, fmt.Errorf("order %s: %w", o.ID, err)
		}
		updated, err := ago(now, o.UpdatedAgo)
		if err != nil {
			return Set{}, fmt.Errorf("order %s: %w", o.ID, err)
		}
		status := model.OrderStatus(o.Status)
		if !status.Valid() {
			return Set{}, fmt.Errorf("order %s: unknown status %q", o.ID, o.Status)
		}
		contact := model.ContactChannel(o.PreferredContact)
		if !contact.Valid() {
			return Set{}, fmt.Errorf("order %s: unknown preferred contact %q", o.ID, o.PreferredContact)
		}
		set.Orders = append(set.Orders, model.Order{
			ID:               o.ID,
			CustomerName:     o.CustomerName,
			CustomerEmail:    model.NullIfBlank(o.CustomerEmail),
			CustomerPhone:    model.NullIfBlank(o.CustomerPhone),
			PreferredContact: contact,
			OrderDetails:     o.OrderDetails,
			Allergies:        model.NullIfBlank(o.Allergies),
			Notes:            model.NullIfBlank(o.Notes),
			Status:           status,
			CreatedAt:        created,
			UpdatedAt:        updated,
		})
	}

	for _, fi := range f.Featured {
		set.Featured = append(set.Featured, model.FeaturedItem{
			ID:          fi.ID,
			Emoji:       fi.Emoji,
			Title:       fi.Title,
			Description: fi.Description,
			SortOrder:   fi.SortOrder,
			IsVisible:   fi.IsVisible,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return set, nil
}

func ago(now time.Time, s string) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid age %q: %w", s, err)
	}
	return now.Add(-d), nil
}
