package theme

import (
	"context"
	"log"
	"sync"
)

// Storage is a durable key-value facility. Set is best-effort.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// SystemPreference answers whether the environment prefers a light appearance.
type SystemPreference interface {
	PrefersLight() (bool, error)
}

// Root is the visual root that carries the mode marker.
type Root interface {
	SetMarker(name, value string)
	RemoveMarker(name string)
}

// Env describes which facilities exist in the current execution environment.
// A nil field means the facility is not available.
type Env struct {
	Storage Storage
	System  SystemPreference
	Root    Root
	Logger  *log.Logger
}

// Controller owns the current Preference.
type Controller struct {
	env Env

	mu      sync.Mutex
	current Preference
	seq     uint64 // bumped on every committed change

	subMu sync.Mutex
	subs  []func(Preference)

	// notifyMu serializes subscriber calls. notified is the seq of the last
	// change delivered; older changes are dropped.
	notifyMu sync.Mutex
	notified uint64
}

// NewController resolves the initial preference and propagates it.
func NewController(ctx context.Context, env Env) *Controller {
	if env.Logger == nil {
		env.Logger = log.Default()
	}
	c := &Controller{env: env}

	c.mu.Lock()
	c.current = c.resolve(ctx)
	c.propagate(ctx)
	c.mu.Unlock()

	return c
}

// resolve walks stored value, then system preference, then Default.
func (c *Controller) resolve(ctx context.Context) Preference {
	if c.env.Storage == nil && c.env.Root == nil {
		return Default
	}

	if c.env.Storage != nil {
		stored, ok, err := c.env.Storage.Get(ctx, StorageKey)
		if err != nil {
			c.env.Logger.Printf("theme: reading stored preference: %v", err)
		} else if ok {
			if p := Preference(stored); p.Valid() {
				return p
			}
		}
	}

	if c.env.System != nil {
		light, err := c.env.System.PrefersLight()
		if err != nil {
			return Dark
		}
		if light {
			return Light
		}
		return Dark
	}

	return Default
}

// propagate pushes the current value to the root marker and then to storage.
// Callers hold c.mu.
func (c *Controller) propagate(ctx context.Context) {
	if c.env.Root != nil {
		if c.current == Light {
			c.env.Root.SetMarker(MarkerAttr, string(Light))
		} else {
			c.env.Root.RemoveMarker(MarkerAttr)
		}
	}
	if c.env.Storage != nil {
		if err := c.env.Storage.Set(ctx, StorageKey, string(c.current)); err != nil {
			c.env.Logger.Printf("theme: persisting preference: %v", err)
		}
	}
}

// Current returns the current preference.
func (c *Controller) Current() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Toggle flips the preference and propagates the new value.
func (c *Controller) Toggle(ctx context.Context) Preference {
	c.mu.Lock()
	c.current = c.current.Other()
	c.propagate(ctx)
	p := c.current
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.notify(seq, p)
	return p
}

// Set assigns p and propagates it. Invalid values are ignored.
func (c *Controller) Set(ctx context.Context, p Preference) Preference {
	if !p.Valid() {
		return c.Current()
	}

	c.mu.Lock()
	c.current = p
	c.propagate(ctx)
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.notify(seq, p)
	return p
}

// Presentation derives the toggle presentation from the current value.
func (c *Controller) Presentation(w Wording) Presentation {
	return Present(c.Current(), w)
}

// Subscribe registers fn to be called after a change has propagated.
// Calls never overlap and arrive in commit order. A change committed while an
// earlier one is still being delivered may supersede it, so a subscriber can
// miss intermediate values but never sees an older value after a newer one.
// fn must not change the preference itself.
func (c *Controller) Subscribe(fn func(Preference)) {
	c.subMu.Lock()
	c.subs = append(c.subs, fn)
	c.subMu.Unlock()
}

func (c *Controller) notify(seq uint64, p Preference) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if seq <= c.notified {
		return
	}
	c.notified = seq

	c.subMu.Lock()
	subs := make([]func(Preference), len(c.subs))
	copy(subs, c.subs)
	c.subMu.Unlock()

	for _, fn := range subs {
		fn(p)
	}
}
