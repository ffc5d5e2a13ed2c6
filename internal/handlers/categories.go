package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/BlackZ36/Meibeichi/internal/models"
	"github.com/BlackZ36/Meibeichi/internal/vntext"
)

type categoryRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (a *API) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categories.List()
	if err != nil {
		slog.Error("list categories", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (a *API) CategoryGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := a.categories.FindByID(id)
	if err != nil {
		slog.Error("find category", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load category")
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (a *API) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "category name is required")
		return
	}
	if strings.TrimSpace(req.Value) == "" {
		req.Value = vntext.Slug(req.Name)
	}

	created, err := a.categories.Create(&models.Category{Name: req.Name, Value: req.Value})
	if err != nil {
		slog.Error("create category", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create category")
		return
	}
	slog.Info("category created", "id", created.ID, "value", created.Value)
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	var req categoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := a.categories.FindByID(id)
	if err != nil {
		slog.Error("find category", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load category")
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	if strings.TrimSpace(req.Name) != "" {
		category.Name = req.Name
	}
	if strings.TrimSpace(req.Value) != "" {
		category.Value = req.Value
	}

	if err := a.categories.Update(category); err != nil {
		slog.Error("update category", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not update category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// CategoryDelete removes the category only. Products keep their type
// value and simply stop matching any filter tab.
func (a *API) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := a.categories.Delete(id); err != nil {
		slog.Error("delete category", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete category")
		return
	}
	slog.Info("category deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
