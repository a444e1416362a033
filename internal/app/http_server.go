// Package app wires HTTP, signaling, and the input pipeline together.
package app

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/frudas24/deskpad/internal/prefs"
	"github.com/frudas24/deskpad/internal/session"
	"github.com/frudas24/deskpad/internal/settings"
	"github.com/frudas24/deskpad/internal/web"
	log "github.com/sirupsen/logrus"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/settings", a.handleSettings)
	mux.Handle("/ws/control", a.Control())
	if sig := a.Signaling(); sig != nil {
		mux.Handle("/ws/signal", sig)
	}
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", staticFileServer(staticDir))
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	session.Snapshot
	Target        string              `json:"target"`
	Devices       []string            `json:"devices"`
	WebRTC        bool                `json:"webrtc"`
	Configuration prefs.Configuration `json:"configuration"`
}

type settingsResponse struct {
	Path    string              `json:"path,omitempty"`
	Values  map[string]string   `json:"values"`
	Keys    []string            `json:"keys"`
	Choices map[string][]string `json:"choices"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleState returns the session state, the reachable devices and the effective configuration.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	resp := stateResponse{
		Snapshot:      a.session.Snapshot(),
		Target:        a.cfg.Target,
		Devices:       a.sinks.IDs(),
		WebRTC:        a.signaling != nil,
		Configuration: prefs.Build(a.store.Snapshot()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handleSettings reads or updates the pipeline settings.
// POST takes a flat key/value object; an empty value deletes the key.
// A value outside its setting's domain rejects the whole update.
func (a *App) handleSettings(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		var values map[string]string
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := prefs.ValidateAll(values); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := a.store.SetMany(values); err != nil {
			log.Warnf("app: save settings: %v", err)
			http.Error(w, "failed to save settings", http.StatusInternalServerError)
			return
		}
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	_ = json.NewEncoder(w).Encode(buildSettingsResponse(a.store))
}

// requireAuth returns false and writes an error if the session is not authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// buildSettingsResponse snapshots the store for the API.
func buildSettingsResponse(store *settings.Store) settingsResponse {
	snap := store.Snapshot()
	return settingsResponse{
		Path:    store.Path(),
		Values:  snap.Map(),
		Keys:    prefs.Keys(),
		Choices: prefs.Choices(),
	}
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
