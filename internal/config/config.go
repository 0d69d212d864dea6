// Package config loads CLI settings from defaults, an optional YAML file and
// CONSPIRE_ environment variables.
package config

// Name is a case-insensitive identifier such as a backend or log level.
type Name string

func (n Name) String() string {
	return string(n)
}

// Config is the merged CLI configuration: defaults, file, then environment.
type Config struct {
	Backend Name         `koanf:"backend" validate:"required,oneof=plotly vegalite"`
	Output  OutputConfig `koanf:"output"`
	Viewer  ViewerConfig `koanf:"viewer"`
	Log     LogConfig    `koanf:"log"`
}

// OutputConfig sets where artifacts are written and whether they are opened.
type OutputConfig struct {
	Path    string `koanf:"path"    validate:"required"`
	Display bool   `koanf:"display"`
}

// ViewerConfig selects how artifacts are opened. An empty command uses the
// default browser and "system" the platform's open command.
type ViewerConfig struct {
	Command string `koanf:"command"`
}

// LogConfig mirrors the persistent log flags.
type LogConfig struct {
	Level  Name `koanf:"level"  validate:"required,oneof=debug info warn error disabled"`
	JSON   bool `koanf:"json"`
	Source bool `koanf:"source"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: "plotly",
		Output: OutputConfig{
			Path:    "render.html",
			Display: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
