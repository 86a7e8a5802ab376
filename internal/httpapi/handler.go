// Package httpapi exposes the activity registry over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mergington/activities/internal/apperr"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/registry"
)

// handler bundles the HTTP endpoints for the registry service.
type handler struct {
	registry  *registry.Service
	staticDir string
}

// NewHandler returns a router exposing the activity API, the standard
// /healthz and /metrics routes, and the static landing page mount.
func NewHandler(svc *registry.Service, staticDir string) http.Handler {
	h := &handler{registry: svc, staticDir: staticDir}

	r := mux.NewRouter()
	r.HandleFunc("/activities", h.listActivities).Methods(http.MethodGet)
	r.HandleFunc("/activities/{name}/signup", h.signup).Methods(http.MethodPost)
	r.HandleFunc("/activities/{name}/unregister", h.unregister).Methods(http.MethodDelete)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)

	// Static assets are an external collaborator; the API only mounts
	// the directory and redirects the root to the landing page.
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	r.HandleFunc("/", h.root).Methods(http.MethodGet)

	return r
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) listActivities(w http.ResponseWriter, r *http.Request) {
	acts, err := h.registry.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acts)
}

func (h *handler) signup(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	email := r.URL.Query().Get("email")

	msg, err := h.registry.Signup(r.Context(), name, email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (h *handler) unregister(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	email := r.URL.Query().Get("email")

	msg, err := h.registry.Unregister(r.Context(), name, email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps a registry error to its status code and emits the
// FastAPI-compatible {"detail": ...} body clients match on.
func writeError(w http.ResponseWriter, err error) {
	status, detail := apperr.FromError(err)
	writeJSON(w, status, map[string]string{"detail": detail})
}
