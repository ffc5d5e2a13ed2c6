// Package models defines the record types stored in the catalog database:
// products, categories, and chat reply templates.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Order values recognized by the catalog. Order is stored as an
// unconstrained integer, but the dashboard only ever writes these two.
const (
	// OrderPinned places a product at the top of the default catalog view.
	OrderPinned = 99

	// OrderDefault is the unpinned priority.
	OrderDefault = 0
)

// LinkRow is a labelled external link attached to a product
// (e.g. a Shopee or Facebook listing).
type LinkRow struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Product is a catalog listing. Price and Material are free-form
// multi-line text; Images holds hosted image URLs in display order;
// Type matches a Category's value slug (by string, not by id — deleting
// a category leaves products with that type untouched).
type Product struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Price     string    `json:"price"`
	Material  string    `json:"material"`
	Images    []string  `json:"images"`
	Links     []LinkRow `json:"links"`
	Order     int       `json:"order"`
	Date      time.Time `json:"date"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPinned reports whether the product has the pinned priority.
func (p *Product) IsPinned() bool {
	return p.Order == OrderPinned
}
