package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"mergington.org/internal/auth"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

// withIdentity resolves the bearer token, if one was presented, and stores
// the verified identity on the request context. Requests without an
// Authorization header pass through anonymously; each handler decides
// whether an identity is required.
func (a *API) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || r.Header.Get(authHeader) == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r.Header.Get(authHeader))
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, "invalid_token", err.Error())
			return
		}

		email, ok, err := a.auth.Authenticate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				writeError(w, r, http.StatusUnauthorized, "expired_token", "token expired")
			case errors.Is(err, auth.ErrInvalidToken):
				writeError(w, r, http.StatusUnauthorized, "invalid_token", "invalid token")
			default:
				writeError(w, r, http.StatusInternalServerError, "internal", "authentication error")
			}
			return
		}
		if ok {
			r = r.WithContext(auth.ContextWithIdentity(r.Context(), email))
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin resolves the caller into an admin profile or writes the
// matching error response and reports false.
func (a *API) requireAdmin(w http.ResponseWriter, r *http.Request) (auth.Profile, bool) {
	email, _ := auth.IdentityFromContext(r.Context())
	profile, err := a.auth.RequireAdmin(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAuthRequired):
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, r, http.StatusUnauthorized, "auth_required", "authentication required")
		case errors.Is(err, auth.ErrAdminRequired):
			writeError(w, r, http.StatusForbidden, "admin_required", "admin access required")
		default:
			writeError(w, r, http.StatusInternalServerError, "internal", "authorization error")
		}
		return auth.Profile{}, false
	}
	return profile, true
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}
