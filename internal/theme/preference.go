package theme

import "fmt"

// Preference is the two-valued display mode.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Default is used whenever nothing else resolves.
const Default = Dark

// StorageKey is the fixed key the preference is persisted under.
const StorageKey = "theme"

// MarkerAttr is set to "light" on the visual root in light mode and removed in
// dark mode. Absence of the marker means dark.
const MarkerAttr = "data-theme"

// Valid reports whether p is one of the two known values.
func (p Preference) Valid() bool {
	return p == Light || p == Dark
}

// Other returns the opposite value.
func (p Preference) Other() Preference {
	if p == Light {
		return Dark
	}
	return Light
}

func (p Preference) String() string { return string(p) }

// Parse accepts exactly "light" or "dark".
func Parse(s string) (Preference, error) {
	p := Preference(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid theme %q: must be light or dark", s)
	}
	return p, nil
}

// Wording holds the locale-specific strings used to describe a toggle.
type Wording struct {
	SwitchToLight string
	SwitchToDark  string
	LightName     string
	DarkName      string
}

// Presentation is everything a surface needs to draw the toggle control.
// It is always derived from the current Preference and never stored.
type Presentation struct {
	Theme       Preference
	IsLight     bool
	ToggleLabel string
	TargetName  string
	Icon        string
}

// Present derives the presentation values for p.
func Present(p Preference, w Wording) Presentation {
	if p == Light {
		return Presentation{
			Theme:       Light,
			IsLight:     true,
			ToggleLabel: w.SwitchToDark,
			TargetName:  w.DarkName,
			Icon:        "🌙",
		}
	}
	return Presentation{
		Theme:       Dark,
		IsLight:     false,
		ToggleLabel: w.SwitchToLight,
		TargetName:  w.LightName,
		Icon:        "☀️",
	}
}
