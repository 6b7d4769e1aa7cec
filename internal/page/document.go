package page

import (
	"sort"
	"sync"

	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

// Document is the root element of a rendered page. It carries the mode marker.
type Document struct {
	mu    sync.RWMutex
	attrs map[string]string
}

// NewDocument returns an empty root.
func NewDocument() *Document {
	return &Document{attrs: make(map[string]string)}
}

func (d *Document) SetMarker(name, value string) {
	d.mu.Lock()
	d.attrs[name] = value
	d.mu.Unlock()
}

func (d *Document) RemoveMarker(name string) {
	d.mu.Lock()
	delete(d.attrs, name)
	d.mu.Unlock()
}

// Attr returns the attribute value and whether it is present.
func (d *Document) Attr(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.attrs[name]
	return v, ok
}

// Attr is one root attribute, for templates.
type Attr struct {
	Name  string
	Value string
}

// Attrs returns a snapshot sorted by name.
func (d *Document) Attrs() []Attr {
	d.mu.RLock()
	out := make([]Attr, 0, len(d.attrs))
	for k, v := range d.attrs {
		out = append(out, Attr{Name: k, Value: v})
	}
	d.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Light reports whether the light marker is present.
func (d *Document) Light() bool {
	v, ok := d.Attr(theme.MarkerAttr)
	return ok && v == string(theme.Light)
}

var _ theme.Root = (*Document)(nil)
