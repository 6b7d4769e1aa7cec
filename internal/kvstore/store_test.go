package kvstore

import (
	"testing"

	"github.com/ziadkadry99/cheatsheet/internal/db"
	"github.com/ziadkadry99/cheatsheet/internal/page"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestGetMissing(t *testing.T) {
	s := setupStore(t)
	v, ok, err := s.Get(t.Context(), "theme")
	if err != nil {
		t.Fatal(err)
	}
	if ok || v != "" {
		t.Errorf("Get(missing) = %q, %v", v, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := setupStore(t)
	ctx := t.Context()

	if err := s.Set(ctx, "theme", "light"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "theme", "dark"); err != nil {
		t.Fatal(err)
	}

	v, ok, err := s.Get(ctx, "theme")
	if err != nil || !ok || v != "dark" {
		t.Errorf("Get = %q, %v, %v; want dark", v, ok, err)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	s := setupStore(t)
	ctx := t.Context()

	for _, v := range []string{"dark", "light", "dark"} {
		if err := s.Set(ctx, "theme", v); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Set(ctx, "other", "x"); err != nil {
		t.Fatal(err)
	}

	events, err := s.History(ctx, "theme", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	if events[0].NewValue != "dark" || events[0].PreviousValue != "light" {
		t.Errorf("newest event = %+v", events[0])
	}
	if events[2].PreviousValue != "" {
		t.Errorf("first write should have no previous value, got %q", events[2].PreviousValue)
	}
	if events[0].ID == "" || events[0].ID == events[1].ID {
		t.Error("event ids should be unique and non-empty")
	}

	limited, err := s.History(ctx, "theme", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("limited events = %d, want 2", len(limited))
	}
}

func TestSetUnchangedRecordsNothing(t *testing.T) {
	s := setupStore(t)
	ctx := t.Context()

	for i := 0; i < 3; i++ {
		if err := s.Set(ctx, "theme", "light"); err != nil {
			t.Fatal(err)
		}
	}

	events, err := s.History(ctx, "theme", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Errorf("events = %d, want 1", len(events))
	}
}

func TestStoreBacksController(t *testing.T) {
	s := setupStore(t)
	ctx := t.Context()
	if err := s.Set(ctx, theme.StorageKey, "light"); err != nil {
		t.Fatal(err)
	}

	doc := page.NewDocument()
	c := theme.NewController(ctx, theme.Env{Storage: s, Root: doc})
	if c.Current() != theme.Light {
		t.Fatalf("Current() = %q, want light from storage", c.Current())
	}

	c.Toggle(ctx)
	v, _, _ := s.Get(ctx, theme.StorageKey)
	if v != "dark" {
		t.Errorf("persisted = %q, want dark", v)
	}
	if doc.Light() {
		t.Error("document still marked light")
	}
}
