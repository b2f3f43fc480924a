package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"mergington.org/internal/auth"
)

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      auth.Profile `json:"user"`
}

type verifyResponse struct {
	Valid bool         `json:"valid"`
	User  auth.Profile `json:"user"`
}

// handleLogin accepts form-encoded credentials (the frontend posts
// URLSearchParams) and returns a bearer token plus the admin profile.
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "malformed form body")
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		writeError(w, r, http.StatusBadRequest, "bad_request", "email and password are required")
		return
	}

	token, expiresAt, profile, err := a.auth.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal", "login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      profile,
	})
}

// handleVerifyToken reports whether the presented token still identifies an
// admin. Token errors are answered by the identity middleware before this
// handler runs.
func (a *API) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	profile, ok := a.requireAdmin(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, verifyResponse{Valid: true, User: profile})
}
