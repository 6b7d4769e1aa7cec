package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
)

// detectContentPattern suggests a dataset pattern when YAML files already exist
// under content/. An empty result selects the embedded dataset.
func detectContentPattern() string {
	matches, _ := filepath.Glob(filepath.Join("content", "*.yaml"))
	if len(matches) > 0 {
		return DefaultContentPattern
	}
	return ""
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to cheatsheet! Let's configure your page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Language of the page chrome.
	localePrompt := promptui.Select{
		Label: "Page language",
		Items: []string{"de — Deutsch", "en — English"},
	}
	localeIdx, _, err := localePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("locale selection: %w", err)
	}
	cfg.Locale = []string{"de", "en"}[localeIdx]

	// 2. Dataset location.
	contentPrompt := promptui.Prompt{
		Label:   "Dataset glob (leave blank for the built-in JavaScript sheet)",
		Default: detectContentPattern(),
	}
	pattern, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content pattern: %w", err)
	}
	cfg.Content = splitAndTrim(pattern)

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. System preference source.
	systemPrompt := promptui.Select{
		Label: "Fallback when no theme has been chosen yet",
		Items: []string{
			"auto  — ask the operating system / terminal",
			"light — always start light",
			"dark  — always start dark",
			"none  — no system source, start dark",
		},
	}
	systemIdx, _, err := systemPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("system preference: %w", err)
	}
	cfg.Theme.System = []SystemMode{SystemAuto, SystemLight, SystemDark, SystemNone}[systemIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		fmt.Printf("\nOverwriting existing %s\n", path)
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
