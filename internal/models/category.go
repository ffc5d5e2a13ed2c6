package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a product grouping tag. Name is the display label shown in
// the picker; Value is the lowercase ASCII slug used as the canonical match
// key against Product.Type. Values should be unique per distinct name but
// the store does not enforce it.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
