// Package tui is a terminal preview of the cheat sheet.
package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

// Root is the visual root of the terminal preview. The controller sets the
// mode marker on it and the model picks its palette from it.
type Root struct {
	mu    sync.Mutex
	attrs map[string]string
}

func NewRoot() *Root {
	return &Root{attrs: make(map[string]string)}
}

func (r *Root) SetMarker(name, value string) {
	r.mu.Lock()
	r.attrs[name] = value
	r.mu.Unlock()
}

func (r *Root) RemoveMarker(name string) {
	r.mu.Lock()
	delete(r.attrs, name)
	r.mu.Unlock()
}

// Light reports whether the light marker is set.
func (r *Root) Light() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attrs[theme.MarkerAttr] == string(theme.Light)
}

var _ theme.Root = (*Root)(nil)

// palette is the set of colors for one display mode.
type palette struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	HeaderBg   lipgloss.Color
}

var (
	darkPalette = palette{
		Background: lipgloss.Color("#0f172a"),
		Text:       lipgloss.Color("#e2e8f0"),
		Muted:      lipgloss.Color("#94a3b8"),
		Accent:     lipgloss.Color("#f7df1e"),
		Border:     lipgloss.Color("#24324f"),
		HeaderBg:   lipgloss.Color("#172241"),
	}
	lightPalette = palette{
		Background: lipgloss.Color("#f8fafc"),
		Text:       lipgloss.Color("#0f172a"),
		Muted:      lipgloss.Color("#475569"),
		Accent:     lipgloss.Color("#ca8a04"),
		Border:     lipgloss.Color("#e2e8f0"),
		HeaderBg:   lipgloss.Color("#fef9c3"),
	}
)

// palette follows the marker on the root.
func (r *Root) palette() palette {
	if r.Light() {
		return lightPalette
	}
	return darkPalette
}
