package handlers

import (
	"log/slog"
	"net/http"

	"github.com/BlackZ36/Meibeichi/internal/middleware"
	"github.com/BlackZ36/Meibeichi/internal/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session cookie.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !a.accounts.Verify(req.Username, req.Password) {
		slog.Warn("login failed", "username", req.Username)
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if _, err := a.sessions.Create(r.Context(), w, &session.Data{Username: req.Username}); err != nil {
		slog.Error("create session", "error", err)
		writeError(w, http.StatusInternalServerError, "could not start session")
		return
	}
	slog.Info("login", "username", req.Username)
	writeJSON(w, http.StatusOK, map[string]string{"username": req.Username})
}

// Logout destroys the current session.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("destroy session", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session reports who is logged in. RequireAuth guarantees a session
// is present by the time this runs.
func (a *API) Session(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": sess.Username})
}
