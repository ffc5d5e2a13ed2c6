package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a reusable reply template: a titled list of text snippets the
// shop owner copies into customer conversations. Pinned chats sort first
// and are surfaced on the catalog page. Values always holds at least one
// line for a stored chat.
type Chat struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Values    []string  `json:"values"`
	Pin       bool      `json:"pin"`
	CreatedAt time.Time `json:"createdAt"`
}
