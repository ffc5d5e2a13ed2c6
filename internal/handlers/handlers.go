// Package handlers implements the JSON API consumed by the dashboard
// SPA: authentication, product/category/chat CRUD, the derived product
// table, and image uploads.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/BlackZ36/Meibeichi/internal/auth"
	"github.com/BlackZ36/Meibeichi/internal/session"
	"github.com/BlackZ36/Meibeichi/internal/storage"
	"github.com/BlackZ36/Meibeichi/internal/store"
)

// API groups all HTTP handlers with their dependencies.
type API struct {
	sessions   *session.Store
	accounts   *auth.Accounts
	products   *store.ProductStore
	categories *store.CategoryStore
	chats      *store.ChatStore
	uploader   storage.Uploader // nil when no storage backend is configured
}

// New creates the API handler group.
func New(
	sessions *session.Store,
	accounts *auth.Accounts,
	products *store.ProductStore,
	categories *store.CategoryStore,
	chats *store.ChatStore,
	uploader storage.Uploader,
) *API {
	return &API{
		sessions:   sessions,
		accounts:   accounts,
		products:   products,
		categories: categories,
		chats:      chats,
		uploader:   uploader,
	}
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError sends the JSON error envelope the SPA turns into a toast.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// idParam parses the {id} route parameter as a UUID.
func idParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into v, rejecting unknown
// fields so client typos surface as 400s instead of silent drops.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
