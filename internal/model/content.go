package model

import "time"

// SiteContent is the editable copy of the public site. It is stored as one
// ContentEntry row per field and merged over DefaultSiteContent on read.
type SiteContent struct {
	SiteTitle       string `json:"site_title" yaml:"site_title"`
	Tagline         string `json:"tagline" yaml:"tagline"`
	HeroHeading     string `json:"hero_heading" yaml:"hero_heading"`
	HeroDescription string `json:"hero_description" yaml:"hero_description"`
	HeroNote        string `json:"hero_note" yaml:"hero_note"`
	AboutTitle      string `json:"about_title" yaml:"about_title"`
	AboutText       string `json:"about_text" yaml:"about_text"`
	AboutInstagram  string `json:"about_instagram" yaml:"about_instagram"`
	InstagramHandle string `json:"instagram_handle" yaml:"instagram_handle"`
	WhatsAppNumber  string `json:"whatsapp_number" yaml:"whatsapp_number"`
}

// ContentEntry is a single site_content row.
type ContentEntry struct {
	ContentKey   string    `gorm:"primaryKey;size:100" json:"content_key"`
	ContentValue string    `gorm:"type:text;not null" json:"content_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ContentEntry) TableName() string {
	return "site_content"
}

// ContentKeys lists the known content keys in display order.
var ContentKeys = []string{
	"site_title",
	"tagline",
	"hero_heading",
	"hero_description",
	"hero_note",
	"about_title",
	"about_text",
	"about_instagram",
	"instagram_handle",
	"whatsapp_number",
}

func (c *SiteContent) field(key string) *string {
	switch key {
	case "site_title":
		return &c.SiteTitle
	case "tagline":
		return &c.Tagline
	case "hero_heading":
		return &c.HeroHeading
	case "hero_description":
		return &c.HeroDescription
	case "hero_note":
		return &c.HeroNote
	case "about_title":
		return &c.AboutTitle
	case "about_text":
		return &c.AboutText
	case "about_instagram":
		return &c.AboutInstagram
	case "instagram_handle":
		return &c.InstagramHandle
	case "whatsapp_number":
		return &c.WhatsAppNumber
	}
	return nil
}

// IsContentKey reports whether key names a SiteContent field.
func IsContentKey(key string) bool {
	var c SiteContent
	return c.field(key) != nil
}

// Get returns the value stored under key, or "" for unknown keys.
func (c SiteContent) Get(key string) string {
	if f := c.field(key); f != nil {
		return *f
	}
	return ""
}

// Set assigns value to key. It returns false when the key is unknown.
func (c *SiteContent) Set(key, value string) bool {
	f := c.field(key)
	if f == nil {
		return false
	}
	*f = value
	return true
}

// MergeContent overlays non-empty entries for known keys onto defaults.
func MergeContent(defaults SiteContent, entries []ContentEntry) SiteContent {
	merged := defaults
	for _, e := range entries {
		if e.ContentValue == "" {
			continue
		}
		merged.Set(e.ContentKey, e.ContentValue)
	}
	return merged
}

// DefaultSiteContent is the copy served when nothing has been edited yet.
func DefaultSiteContent() SiteContent {
	return SiteContent{
		SiteTitle:       "Cobb's Crumbs",
		Tagline:         "Small-batch home bakery",
		HeroHeading:     "Homemade treats, baked to order",
		HeroDescription: "Truffles, cupcakes, brownies and little tarts made in small batches for parties, classrooms and cozy nights in.",
		HeroNote:        "Orders are confirmed by message. Pick-up only.",
		AboutTitle:      "About the baker",
		AboutText:       "Hi, I'm Emily! I bake everything from scratch in my home kitchen and love making themed treats for your celebrations.",
		AboutInstagram:  "Follow along on Instagram for weekly specials.",
		InstagramHandle: "@cobbscrumbs",
		WhatsAppNumber:  "12269244889",
	}
}
