package handlers_test

import (
	"net/http"
	"testing"

	"github.com/BlackZ36/Meibeichi/internal/models"
)

func TestChatLifecycle(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	t.Cleanup(func() {
		e.db.Exec("DELETE FROM chats WHERE title = $1", "Tư Vấn Size API Test")
	})

	// Create: blank lines are dropped, survivors kept in order.
	resp := e.do(t, http.MethodPost, "/api/chats/", map[string]any{
		"title":  "Tư Vấn Size API Test",
		"values": []string{"Dạ chào bạn ạ!", "", "Bạn cho shop xin size tay nhé"},
	})
	var created models.Chat
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	decodeInto(t, resp, &created)
	if len(created.Values) != 2 {
		t.Fatalf("created with %d lines, want 2", len(created.Values))
	}
	if created.Pin {
		t.Error("created chat should not be pinned by default")
	}

	// Pin it via partial update; lines stay untouched.
	pin := true
	resp = e.do(t, http.MethodPut, "/api/chats/"+created.ID.String(), map[string]any{
		"pin": pin,
	})
	var updated models.Chat
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	decodeInto(t, resp, &updated)
	if !updated.Pin {
		t.Error("update did not pin the chat")
	}
	if len(updated.Values) != 2 {
		t.Errorf("update clobbered lines: %v", updated.Values)
	}

	// Pinned filter includes it.
	resp = e.do(t, http.MethodGet, "/api/chats/?pinned=1", nil)
	var pinnedList []models.Chat
	decodeInto(t, resp, &pinnedList)
	found := false
	for _, c := range pinnedList {
		if c.ID == created.ID {
			found = true
		}
		if !c.Pin {
			t.Errorf("pinned filter returned unpinned chat %q", c.Title)
		}
	}
	if !found {
		t.Error("pinned chat missing from ?pinned=1 list")
	}

	// A chat can never lose its last reply line.
	resp = e.do(t, http.MethodPut, "/api/chats/"+created.ID.String(), map[string]any{
		"values": []string{"", "   "},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty lines update = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	// Delete.
	resp = e.do(t, http.MethodDelete, "/api/chats/"+created.ID.String(), nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
	resp = e.do(t, http.MethodGet, "/api/chats/"+created.ID.String(), nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestChatCreateValidation(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"values": []string{"Dạ vâng ạ"}}},
		{"no lines", map[string]any{"title": "Trống"}},
		{"only blank lines", map[string]any{"title": "Trống", "values": []string{"", "  "}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := e.do(t, http.MethodPost, "/api/chats/", tt.body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("create status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
			}
		})
	}
}
