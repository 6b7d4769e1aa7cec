package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultDataset(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if m.Columns != (Columns{"Methode", "Beschreibung", "Beispiel", "Ausgabe"}) {
		t.Errorf("columns = %v", m.Columns)
	}
	if len(m.Sections) == 0 {
		t.Fatal("embedded dataset has no sections")
	}
	if m.Sections[0].ID != "String-Methoden" {
		t.Errorf("first section = %q, want String-Methoden", m.Sections[0].ID)
	}
	if err := Validate(m); err != nil {
		t.Errorf("embedded dataset should validate: %v", err)
	}
}

func TestLoadNoPatternsUsesDefault(t *testing.T) {
	m, err := Load(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	def, _ := Default()
	if len(m.Sections) != len(def.Sections) {
		t.Errorf("sections = %d, want %d", len(m.Sections), len(def.Sections))
	}
}

func TestLoadPreservesOrderAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "content/01-strings.yaml", `
columns: [Method, Description, Example, Output]
sections:
  - id: b
    title: Bravo
    rows:
      - {method: m2, description: d2, example: e2, output: o2}
      - {method: m1, description: d1, example: e1, output: o1}
`)
	writeFile(t, dir, "content/nested/02-arrays.yaml", `
sections:
  - id: a
    title: Alpha
    nav_label: A
    rows: []
`)

	m, err := Load(dir, []string{"content/**/*.yaml"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if len(m.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(m.Sections))
	}
	if m.Sections[0].ID != "b" || m.Sections[1].ID != "a" {
		t.Errorf("section order = %s,%s; want b,a", m.Sections[0].ID, m.Sections[1].ID)
	}
	if m.Sections[0].Rows[0].Method != "m2" || m.Sections[0].Rows[1].Method != "m1" {
		t.Error("row order was not preserved")
	}
	if m.Sections[0].NavLabel != "Bravo" {
		t.Errorf("nav label fallback = %q, want Bravo", m.Sections[0].NavLabel)
	}
	if m.Sections[1].NavLabel != "A" {
		t.Errorf("nav label = %q, want A", m.Sections[1].NavLabel)
	}
}

func TestLoadRejectsWrongColumnCount(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.yaml", "columns: [a, b, c]\nsections: []\n")

	_, err := Load(dir, []string{"*.yaml"})
	if err == nil || !strings.Contains(err.Error(), "exactly 4") {
		t.Errorf("expected column count error, got %v", err)
	}
}

func TestLoadRejectsConflictingColumns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "columns: [a, b, c, d]\n")
	writeFile(t, dir, "b.yaml", "columns: [a, b, c, x]\n")

	if _, err := Load(dir, []string{"*.yaml"}); err == nil {
		t.Error("expected conflicting columns error")
	}
}

func TestLoadMissingColumns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "sections: []\n")

	if _, err := Load(dir, []string{"*.yaml"}); err == nil {
		t.Error("expected error when no file defines columns")
	}
}

func TestLoadNoMatches(t *testing.T) {
	if _, err := Load(t.TempDir(), []string{"*.yaml"}); err == nil {
		t.Error("expected error for unmatched patterns")
	}
}

func TestLoadUnknownField(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "columns: [a, b, c, d]\nsection: []\n")

	if _, err := Load(dir, []string{"*.yaml"}); err == nil {
		t.Error("expected error for unknown top-level field")
	}
}

func TestRowCellsMatchColumnOrder(t *testing.T) {
	r := Row{Method: "m", Description: "d", Example: "e", Output: "o"}
	if got := r.Cells(); got != [ColumnCount]string{"m", "d", "e", "o"} {
		t.Errorf("Cells() = %v", got)
	}
}

func TestValidate(t *testing.T) {
	m := Model{
		Columns: Columns{"a", "b", "c", "d"},
		Sections: []Section{
			{ID: "x", Rows: []Row{{Method: "m"}, {Method: "m"}}},
			{ID: "x"},
			{ID: ""},
			{ID: "has space"},
			{ID: "top"},
		},
	}

	err := Validate(m)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Issues) != 5 {
		t.Errorf("issues = %d, want 5: %v", len(verr.Issues), verr.Issues)
	}
}

func TestValidateSameMethodAcrossSections(t *testing.T) {
	m := Model{
		Columns: Columns{"a", "b", "c", "d"},
		Sections: []Section{
			{ID: "s1", Rows: []Row{{Method: "includes()"}}},
			{ID: "s2", Rows: []Row{{Method: "includes()"}}},
		},
	}
	if err := Validate(m); err != nil {
		t.Errorf("same method in different sections is allowed: %v", err)
	}
}
