package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/BlackZ36/Meibeichi/internal/models"
)

// chatRequest carries chat template fields for create and update.
// Values and Pin are pointers so updates can leave them untouched.
type chatRequest struct {
	Title  *string   `json:"title"`
	Values *[]string `json:"values"`
	Pin    *bool     `json:"pin"`
}

// ChatsList returns all chat templates, pinned first. Passing
// ?pinned=1 narrows the list to pinned templates only.
func (a *API) ChatsList(w http.ResponseWriter, r *http.Request) {
	var (
		chats []models.Chat
		err   error
	)
	if r.URL.Query().Get("pinned") == "1" {
		chats, err = a.chats.ListPinned()
	} else {
		chats, err = a.chats.List()
	}
	if err != nil {
		slog.Error("list chats", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load chat templates")
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

func (a *API) ChatGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}
	chat, err := a.chats.FindByID(id)
	if err != nil {
		slog.Error("find chat", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load chat template")
		return
	}
	if chat == nil {
		writeError(w, http.StatusNotFound, "chat template not found")
		return
	}
	writeJSON(w, http.StatusOK, chat)
}

func (a *API) ChatCreate(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	chat := models.Chat{}
	if req.Title != nil {
		chat.Title = *req.Title
	}
	if req.Values != nil {
		chat.Values = cleanLines(*req.Values)
	}
	if req.Pin != nil {
		chat.Pin = *req.Pin
	}

	if strings.TrimSpace(chat.Title) == "" {
		writeError(w, http.StatusBadRequest, "chat title is required")
		return
	}
	if len(chat.Values) == 0 {
		writeError(w, http.StatusBadRequest, "chat needs at least one reply line")
		return
	}

	created, err := a.chats.Create(&chat)
	if err != nil {
		slog.Error("create chat", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create chat template")
		return
	}
	slog.Info("chat created", "id", created.ID, "title", created.Title)
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) ChatUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}
	var req chatRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	chat, err := a.chats.FindByID(id)
	if err != nil {
		slog.Error("find chat", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load chat template")
		return
	}
	if chat == nil {
		writeError(w, http.StatusNotFound, "chat template not found")
		return
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			writeError(w, http.StatusBadRequest, "chat title is required")
			return
		}
		chat.Title = *req.Title
	}
	if req.Values != nil {
		lines := cleanLines(*req.Values)
		if len(lines) == 0 {
			writeError(w, http.StatusBadRequest, "chat needs at least one reply line")
			return
		}
		chat.Values = lines
	}
	if req.Pin != nil {
		chat.Pin = *req.Pin
	}

	if err := a.chats.Update(chat); err != nil {
		slog.Error("update chat", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not update chat template")
		return
	}
	writeJSON(w, http.StatusOK, chat)
}

func (a *API) ChatDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}
	if err := a.chats.Delete(id); err != nil {
		slog.Error("delete chat", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete chat template")
		return
	}
	slog.Info("chat deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
