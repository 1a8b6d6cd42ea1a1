// /internal/model/order.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus defines the possible states of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ContactChannel is how the customer wants to be reached about an order.
type ContactChannel string

const (
	ContactInstagram ContactChannel = "instagram"
	ContactWhatsApp  ContactChannel = "whatsapp"
	ContactText      ContactChannel = "text"
	ContactEmail     ContactChannel = "email"
)

func (c ContactChannel) Valid() bool {
	switch c {
	case ContactInstagram, ContactWhatsApp, ContactText, ContactEmail:
		return true
	}
	return false
}

// Order is a request placed through the storefront. OrderDetails is free text
// ("2x Ghost Brownie Squares, 1x Little Dessert Tarts") and is never parsed into line items.
type Order struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	CustomerName     string         `gorm:"not null;size:200" json:"customer_name"`
	CustomerEmail    *string        `gorm:"size:255" json:"customer_email,omitempty"`
	CustomerPhone    *string        `gorm:"size:50" json:"customer_phone,omitempty"`
	PreferredContact ContactChannel `gorm:"type:varchar(20);not null" json:"preferred_contact"`
	OrderDetails     string         `gorm:"type:text;not null" json:"order_details"`
	Allergies        *string        `gorm:"type:text" json:"allergies,omitempty"`
	Notes            *string        `gorm:"type:text" json:"notes,omitempty"`
	Status           OrderStatus    `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	return nil
}
