package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/cheatsheet/internal/db"
	"github.com/ziadkadry99/cheatsheet/internal/kvstore"
	"github.com/ziadkadry99/cheatsheet/internal/locale"
	"github.com/ziadkadry99/cheatsheet/internal/page"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

func setupLive(t *testing.T) (*Live, *kvstore.Store, chi.Router) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := kvstore.NewStore(database)
	doc := page.NewDocument()
	ctrl := theme.NewController(t.Context(), theme.Env{
		Storage: store,
		System:  theme.Static{Light: false},
		Root:    doc,
		Logger:  quiet,
	})

	l, err := NewLive(sampleModel(), locale.Lookup("en"), ctrl)
	if err != nil {
		t.Fatalf("NewLive: %v", err)
	}
	t.Cleanup(l.Close)

	r := chi.NewRouter()
	l.RegisterRoutes(r)
	return l, store, r
}

func decodeState(t *testing.T, body []byte) themeState {
	t.Helper()
	var st themeState
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return st
}

func TestLiveIndex(t *testing.T) {
	_, _, r := setupLive(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-live="true"`) {
		t.Error("live page should be marked live")
	}
	if strings.Contains(body, `data-theme="light"`) {
		t.Error("dark page should not carry the light marker")
	}
}

func TestLiveIndexMarkerMatchesToggle(t *testing.T) {
	l, _, r := setupLive(t)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				l.ctrl.Toggle(context.Background())
			}
		}
	}()

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		body := w.Body.String()

		marked := strings.Contains(body, `data-theme="light"`)
		pressed := strings.Contains(body, `aria-pressed="true"`)
		if marked != pressed {
			close(stop)
			<-done
			t.Fatalf("page %d: marker=%v but aria-pressed=%v", i, marked, pressed)
		}
	}
	close(stop)
	<-done
}

func TestLiveAssets(t *testing.T) {
	_, _, r := setupLive(t)

	for path, want := range map[string]string{
		"/style.css": "text/css",
		"/script.js": "text/javascript",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, want) {
			t.Errorf("%s: content type = %q, want %s", path, ct, want)
		}
	}
}

func TestLiveGetTheme(t *testing.T) {
	_, _, r := setupLive(t)

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	st := decodeState(t, w.Body.Bytes())
	if st.Theme != theme.Dark || st.IsLight {
		t.Errorf("state = %+v, want dark", st)
	}
	if st.Label != "Switch to light mode" || st.Text != "Switch to Light mode" || st.Icon != "☀️" {
		t.Errorf("presentation = %+v", st)
	}
}

func TestLiveTogglePersists(t *testing.T) {
	_, store, r := setupLive(t)

	req := httptest.NewRequest(http.MethodPost, "/api/theme/toggle", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if st := decodeState(t, w.Body.Bytes()); st.Theme != theme.Light || !st.IsLight {
		t.Errorf("state = %+v, want light", st)
	}

	v, ok, err := store.Get(t.Context(), theme.StorageKey)
	if err != nil || !ok || v != "light" {
		t.Errorf("stored = %q, %v, %v; want light", v, ok, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `data-theme="light"`) {
		t.Error("page should carry the light marker after toggling")
	}
}

func TestLiveSetTheme(t *testing.T) {
	_, _, r := setupLive(t)

	tests := []struct {
		body string
		code int
	}{
		{`{"theme":"light"}`, http.StatusOK},
		{`{"theme":"light"}`, http.StatusOK},
		{`{"theme":"sepia"}`, http.StatusBadRequest},
		{`not json`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(tt.body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.code {
			t.Errorf("PUT %s: expected %d, got %d", tt.body, tt.code, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if st := decodeState(t, w.Body.Bytes()); st.Theme != theme.Light {
		t.Errorf("invalid PUT changed the theme: %+v", st)
	}
}

func TestLiveWebSocketPush(t *testing.T) {
	_, _, r := setupLive(t)

	server := httptest.NewServer(r)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/theme"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello themeState
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read hello: %v", err)
	}
	if hello.Theme != theme.Dark {
		t.Errorf("hello = %+v, want dark", hello)
	}

	res, err := http.Post(server.URL+"/api/theme/toggle", "application/json", nil)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	res.Body.Close()

	var pushed themeState
	if err := conn.ReadJSON(&pushed); err != nil {
		t.Fatalf("read push: %v", err)
	}
	if pushed.Theme != theme.Light || !pushed.IsLight {
		t.Errorf("pushed = %+v, want light", pushed)
	}
}
