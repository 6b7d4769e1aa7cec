package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.Locale != "de" {
		t.Errorf("expected default locale de, got %q", cfg.Locale)
	}
	if cfg.Theme.System != SystemAuto {
		t.Errorf("expected default theme.system auto, got %q", cfg.Theme.System)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if len(cfg.Content) != 0 {
		t.Errorf("expected embedded dataset by default, got %v", cfg.Content)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.cheatsheet.yml")

	original := DefaultConfig()
	original.Content = []string{"content/**/*.yaml", "extra.yaml"}
	original.OutputDir = "public"
	original.Locale = "en"
	original.Theme.System = SystemLight
	original.Theme.DBPath = "prefs.db"
	original.Server.Port = 9000

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Locale != original.Locale {
		t.Errorf("locale: got %q, want %q", loaded.Locale, original.Locale)
	}
	if loaded.Theme != original.Theme {
		t.Errorf("theme: got %+v, want %+v", loaded.Theme, original.Theme)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if len(loaded.Content) != len(original.Content) {
		t.Fatalf("content length: got %d, want %d", len(loaded.Content), len(original.Content))
	}
	for i, v := range loaded.Content {
		if v != original.Content[i] {
			t.Errorf("content[%d]: got %q, want %q", i, v, original.Content[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("CHEATSHEET_LOCALE", "en")
	defer os.Unsetenv("CHEATSHEET_LOCALE")
	os.Setenv("CHEATSHEET_THEME__SYSTEM", "none")
	defer os.Unsetenv("CHEATSHEET_THEME__SYSTEM")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Locale != "en" {
		t.Errorf("env override failed: got %q, want en", loaded.Locale)
	}
	if loaded.Theme.System != SystemNone {
		t.Errorf("nested env override failed: got %q, want none", loaded.Theme.System)
	}
}

func TestValidateValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidSystemMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.System = "sepia"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid theme.system")
	}
}

func TestValidateEmptyOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty output_dir")
	}
}

func TestValidatePortRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateEmptyContentPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content = []string{"  "}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for blank content pattern")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"content/**/*.yaml", []string{"content/**/*.yaml"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
