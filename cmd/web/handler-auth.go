package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

type loginRequest struct {
	Username string `json:"username"`
}

// loginPOST starts a session for a username, creating the user on first
// login.
func (app *application) loginPOST(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		app.clientError(w, http.StatusBadRequest, "username is required")
		return
	}

	userID, err := app.db.UpsertUser(r.Context(), username)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("upsert user: %w", err))
		return
	}

	// Renew the session token on privilege change.
	if err = app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, fmt.Errorf("renew session token: %w", err))
		return
	}
	app.sessionManager.Put(r.Context(), sessionUserIDKey, userID)

	app.logger.LogAttrs(r.Context(), slog.LevelInfo, "user logged in", slog.Int("user_id", userID))
	app.writeJSON(w, r, http.StatusOK, map[string]any{"user_id": userID, "username": username})
}

// logoutPOST destroys the current session.
func (app *application) logoutPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.sessionManager.Destroy(r.Context()); err != nil {
		app.serverError(w, r, fmt.Errorf("destroy session: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "logged out"})
}
