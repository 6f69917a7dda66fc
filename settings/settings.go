package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// FileName is the settings file looked up in the user and working directories.
const FileName = "settings.yaml"

var ErrInvalid = errors.New("invalid settings")

type Window struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// Settings holds the user-facing options. Physics tuning is not configurable.
type Settings struct {
	Window    Window `yaml:"window"`
	Level     string `yaml:"level"`
	LogLevel  string `yaml:"log_level"`
	Debug     bool   `yaml:"debug"`
	HotReload bool   `yaml:"hot_reload"`
	LevelsDir string `yaml:"levels_dir"`
	TPS       int    `yaml:"tps"`

	// Source is where the settings were read from, "embedded" for the default.
	Source string `yaml:"-"`
}

// Default returns the embedded default settings.
func Default() Settings {
	s := Settings{
		Window:   Window{Title: "Blocky", Scale: 1},
		Level:    "level1",
		LogLevel: "info",
		TPS:      60,
	}
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		panic(fmt.Sprintf("settings: embedded default: %v", err))
	}
	s.Source = "embedded"
	return s
}

// Load reads settings.
// Search order: path -> ~/.blocky/settings.yaml -> ./settings.yaml -> embedded default.
// An explicit path must exist. Fields missing from a file keep their defaults.
func Load(path string) (Settings, error) {
	if path != "" {
		s, err := readFile(path)
		if err != nil {
			return Settings{}, err
		}
		return s, s.Validate()
	}

	for _, candidate := range []string{userPath(), FileName} {
		if candidate == "" {
			continue
		}
		s, err := readFile(candidate)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Settings{}, err
		}
		return s, s.Validate()
	}

	return Default(), nil
}

func readFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func userPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocky", FileName)
}

// Validate reports the first bad field wrapped in ErrInvalid.
func (s Settings) Validate() error {
	switch {
	case s.TPS <= 0:
		return fmt.Errorf("settings: tps %d must be positive: %w", s.TPS, ErrInvalid)
	case s.Window.Scale <= 0:
		return fmt.Errorf("settings: window scale %v must be positive: %w", s.Window.Scale, ErrInvalid)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("settings: log level %q: %w", s.LogLevel, ErrInvalid)
	}
	return nil
}

// Logger builds the structured logger for these settings. Debug forces the
// debug level.
func (s Settings) Logger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if s.Debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}
