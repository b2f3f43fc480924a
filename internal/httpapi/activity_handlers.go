package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"mergington.org/internal/directory"
)

func (a *API) handleActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, a.directory.List(r.Context()))
}

// handleActivityAction routes /activities/{name}/signup and
// /activities/{name}/unregister. Activity names contain spaces, so the path
// segment arrives percent-encoded.
func (a *API) handleActivityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 || idx == len(rest)-1 {
		writeError(w, r, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	name, err := url.PathUnescape(rest[:idx])
	if err != nil || name == "" {
		writeError(w, r, http.StatusBadRequest, "bad_request", "malformed activity name")
		return
	}

	switch rest[idx+1:] {
	case "signup":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, r, http.MethodPost)
			return
		}
		a.signup(w, r, name)
	case "unregister":
		if r.Method != http.MethodDelete {
			methodNotAllowed(w, r, http.MethodDelete)
			return
		}
		a.unregister(w, r, name)
	default:
		writeError(w, r, http.StatusNotFound, "not_found", "resource not found")
	}
}

func (a *API) signup(w http.ResponseWriter, r *http.Request, name string) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	email, ok := studentEmail(w, r)
	if !ok {
		return
	}
	if err := a.directory.Signup(r.Context(), name, email); err != nil {
		handleDirectoryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (a *API) unregister(w http.ResponseWriter, r *http.Request, name string) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	email, ok := studentEmail(w, r)
	if !ok {
		return
	}
	if err := a.directory.Unregister(r.Context(), name, email); err != nil {
		handleDirectoryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

func studentEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, r, http.StatusBadRequest, "bad_request", "email query parameter is required")
		return "", false
	}
	return email, true
}

func handleDirectoryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, directory.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, directory.ErrAlreadyEnrolled):
		writeError(w, r, http.StatusBadRequest, "already_enrolled", err.Error())
	case errors.Is(err, directory.ErrFull):
		writeError(w, r, http.StatusBadRequest, "full", err.Error())
	case errors.Is(err, directory.ErrNotEnrolled):
		writeError(w, r, http.StatusBadRequest, "not_enrolled", err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, "internal", "internal error")
	}
}
