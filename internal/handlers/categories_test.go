package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/BlackZ36/Meibeichi/internal/models"
)

func TestCategoryLifecycle(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	t.Cleanup(func() {
		e.db.Exec("DELETE FROM categories WHERE value = $1", "vong-co-api-test")
	})

	// Create without a value: the slug is derived from the name.
	resp := e.do(t, http.MethodPost, "/api/categories/", map[string]string{
		"name": "Vòng Cổ API Test",
	})
	var created models.Category
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	decodeInto(t, resp, &created)
	if created.Value != "vong-co-api-test" {
		t.Errorf("derived value = %q, want %q", created.Value, "vong-co-api-test")
	}

	// Rename, keeping the value stable so product types stay valid.
	resp = e.do(t, http.MethodPut, "/api/categories/"+created.ID.String(), map[string]string{
		"name": "Vòng Cổ Bạc",
	})
	var updated models.Category
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	decodeInto(t, resp, &updated)
	if updated.Name != "Vòng Cổ Bạc" {
		t.Errorf("updated name = %q", updated.Name)
	}
	if updated.Value != created.Value {
		t.Errorf("update changed value: %q -> %q", created.Value, updated.Value)
	}

	// The list contains the category.
	resp = e.do(t, http.MethodGet, "/api/categories/", nil)
	var list []models.Category
	decodeInto(t, resp, &list)
	found := false
	for _, c := range list {
		if c.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("created category missing from list")
	}

	// Delete.
	resp = e.do(t, http.MethodDelete, "/api/categories/"+created.ID.String(), nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
}

func TestCategoryCreateRequiresName(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	resp := e.do(t, http.MethodPost, "/api/categories/", map[string]string{"value": "chi-co-value"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("create status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestCategoryUpdateUnknownID(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	resp := e.do(t, http.MethodPut, "/api/categories/"+uuid.NewString(), map[string]string{
		"name": "Không Tồn Tại",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("update status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
