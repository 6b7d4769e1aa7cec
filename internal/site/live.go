package site

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/cheatsheet/internal/content"
	"github.com/ziadkadry99/cheatsheet/internal/locale"
	"github.com/ziadkadry99/cheatsheet/internal/page"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

// Live serves the cheat sheet from the controller's current state and lets
// pages change it over HTTP.
type Live struct {
	model    content.Model
	strings  locale.Strings
	ctrl     *theme.Controller
	renderer *Renderer
	hub      *Hub
}

// NewLive renders the dataset cells and subscribes to controller changes.
func NewLive(m content.Model, s locale.Strings, ctrl *theme.Controller) (*Live, error) {
	if err := content.Validate(m); err != nil {
		return nil, err
	}
	r, err := NewRenderer(m, s, nil)
	if err != nil {
		return nil, err
	}

	l := &Live{
		model:    m,
		strings:  s,
		ctrl:     ctrl,
		renderer: r,
		hub:      NewHub(),
	}
	ctrl.Subscribe(func(p theme.Preference) {
		l.hub.Broadcast(l.state(p))
	})
	return l, nil
}

// RegisterRoutes mounts the page, its assets and the theme API.
func (l *Live) RegisterRoutes(r chi.Router) {
	r.Get("/", l.handleIndex)
	r.Get("/"+StyleFile, l.handleStyle)
	r.Get("/"+ScriptFile, l.handleScript)
	r.Get("/api/theme", l.handleGetTheme)
	r.Post("/api/theme/toggle", l.handleToggle)
	r.Put("/api/theme", l.handleSetTheme)
	r.Get("/ws/theme", l.handleWebSocket)
}

// Hub returns the websocket hub.
func (l *Live) Hub() *Hub { return l.hub }

// Close disconnects websocket clients.
func (l *Live) Close() { l.hub.Close() }

// themeState is the JSON shape of the current theme.
type themeState struct {
	Theme   theme.Preference `json:"theme"`
	IsLight bool             `json:"is_light"`
	Label   string           `json:"label"`
	Text    string           `json:"text"`
	Icon    string           `json:"icon"`
}

type setThemeRequest struct {
	Theme string `json:"theme"`
}

func (l *Live) state(p theme.Preference) themeState {
	pres := theme.Present(p, l.strings.Wording)
	return themeState{
		Theme:   pres.Theme,
		IsLight: pres.IsLight,
		Label:   pres.ToggleLabel,
		Text:    l.strings.SwitchTo + " " + pres.TargetName,
		Icon:    pres.Icon,
	}
}

func (l *Live) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := page.Build(l.model, l.ctrl.Presentation(l.strings.Wording), l.strings)

	var buf bytes.Buffer
	if err := l.renderer.Render(&buf, p, true); err != nil {
		log.Printf("site: rendering page: %v", err)
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (l *Live) handleStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(l.renderer.CSS()))
}

func (l *Live) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write([]byte(jsContent))
}

func (l *Live) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, l.state(l.ctrl.Current()))
}

func (l *Live) handleToggle(w http.ResponseWriter, r *http.Request) {
	p := l.ctrl.Toggle(r.Context())
	writeJSON(w, http.StatusOK, l.state(p))
}

func (l *Live) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req setThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	p, err := theme.Parse(req.Theme)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, l.state(l.ctrl.Set(r.Context(), p)))
}

func (l *Live) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	l.hub.serve(w, r, func() any { return l.state(l.ctrl.Current()) })
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
