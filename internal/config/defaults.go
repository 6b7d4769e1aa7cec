package config

// DefaultContentPattern is suggested by the init wizard for dataset files.
const DefaultContentPattern = "content/**/*.yaml"

// DefaultConfig returns a Config with sensible defaults. An empty Content list
// selects the embedded dataset.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "site",
		Locale:    "de",
		Theme: ThemeConfig{
			DBPath: ".cheatsheet/preferences.db",
			System: SystemAuto,
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}
