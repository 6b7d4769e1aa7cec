package theme

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnsupported is returned by system sources that cannot answer on this platform.
var ErrUnsupported = errors.New("system preference unsupported on this platform")

// Static always reports the configured answer.
type Static struct {
	Light bool
}

func (s Static) PrefersLight() (bool, error) { return s.Light, nil }

// Terminal infers the preference from the terminal background colour.
type Terminal struct{}

func (Terminal) PrefersLight() (bool, error) {
	return !lipgloss.HasDarkBackground(), nil
}

// Darwin reads the global macOS interface style.
type Darwin struct{}

func (Darwin) PrefersLight() (bool, error) {
	if runtime.GOOS != "darwin" {
		return false, ErrUnsupported
	}

	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		// The key is absent when the light appearance is active.
		return true, nil
	}
	return !strings.Contains(strings.ToLower(string(out)), "dark"), nil
}

// Chain returns the first answer that is not an error.
type Chain []SystemPreference

func (c Chain) PrefersLight() (bool, error) {
	var errs []error
	for _, src := range c {
		light, err := src.PrefersLight()
		if err == nil {
			return light, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return false, ErrUnsupported
	}
	return false, errors.Join(errs...)
}

// SystemFromMode maps a configured mode to a source. "none" yields nil,
// meaning the facility is not available.
func SystemFromMode(mode string) (SystemPreference, error) {
	switch mode {
	case "", "auto":
		return Chain{Darwin{}, Terminal{}}, nil
	case "light":
		return Static{Light: true}, nil
	case "dark":
		return Static{Light: false}, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid system preference mode %q: must be auto, light, dark or none", mode)
	}
}
