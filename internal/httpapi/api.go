package httpapi

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"strings"

	"mergington.org/internal/auth"
	"mergington.org/internal/directory"
	"mergington.org/internal/obs"
)

// API is the HTTP layer. It owns the route table and maps domain results to
// transport outcomes; business rules live in the auth and directory services.
type API struct {
	mux       *http.ServeMux
	auth      *auth.Service
	directory *directory.Service
	version   string
	maxBody   int64
}

// New wires the route table.
func New(authSvc *auth.Service, dir *directory.Service, static fs.FS, version string) *API {
	a := &API{
		mux:       http.NewServeMux(),
		auth:      authSvc,
		directory: dir,
		version:   version,
		maxBody:   1 << 20,
	}

	a.mux.HandleFunc("/login", a.handleLogin)
	a.mux.HandleFunc("/verify-token", a.handleVerifyToken)
	a.mux.HandleFunc("/activities", a.handleActivities)
	a.mux.HandleFunc("/activities/", a.handleActivityAction)

	a.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	a.mux.HandleFunc("/healthz", a.handleHealthz)
	a.mux.Handle("/metrics", obs.Handler())

	a.mux.HandleFunc("/", a.handleRoot)

	return a
}

// Handler returns the fully wrapped handler for the server.
func (a *API) Handler() http.Handler {
	h := http.Handler(a.mux)
	h = a.withIdentity(h)
	h = MaxBodyBytes(h, a.maxBody)
	h = SecurityHeaders(h)
	h = CORS(h)
	h = LoggingJSON(h)
	h = RequestID(h)
	return obs.Instrument(h)
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "mergington-api",
		"version": a.version,
	})
}

func (a *API) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the stable error shape: a machine-checkable kind, a
// human-readable message and the request id.
func writeError(w http.ResponseWriter, r *http.Request, code int, kind, msg string) {
	payload := map[string]any{
		"error":   kind,
		"message": msg,
	}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, code, payload)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
}
