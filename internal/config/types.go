package config

// SystemMode selects where the system display preference comes from.
type SystemMode string

const (
	SystemAuto  SystemMode = "auto"
	SystemLight SystemMode = "light"
	SystemDark  SystemMode = "dark"
	SystemNone  SystemMode = "none"
)

// Config is the top-level cheatsheet configuration, corresponding to .cheatsheet.yml.
type Config struct {
	Content   []string     `yaml:"content" koanf:"content"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	Locale    string       `yaml:"locale" koanf:"locale"`
	LogFile   string       `yaml:"log_file" koanf:"log_file"`
	Theme     ThemeConfig  `yaml:"theme" koanf:"theme"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
}

// ThemeConfig controls where the display preference is stored and which
// system source answers when nothing is stored.
type ThemeConfig struct {
	DBPath string     `yaml:"db_path" koanf:"db_path"`
	System SystemMode `yaml:"system" koanf:"system"`
}

// ServerConfig holds live server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
