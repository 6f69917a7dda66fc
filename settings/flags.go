package settings

import "github.com/spf13/cobra"

// DefaultLevelsDir is watched for edits when hot reload is on and no levels
// directory is set.
const DefaultLevelsDir = "levels"

// Flags are the command-line overrides shared by both binaries.
type Flags struct {
	Path      string
	Level     string
	LevelsDir string
	Debug     bool
	Watch     bool
}

// Register adds the flags to cmd and its subcommands.
func (f *Flags) Register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.Path, "settings", "", "settings file (default ~/.blocky/settings.yaml, then ./settings.yaml)")
	pf.StringVar(&f.Level, "level", "", "level name, .txt optional")
	pf.StringVar(&f.LevelsDir, "levels-dir", "", "directory whose level files override the built-in ones")
	pf.BoolVar(&f.Debug, "debug", false, "debug logging and overlay")
	pf.BoolVar(&f.Watch, "watch", false, "reload the level when its file changes")
}

// Load reads the settings file and applies the flags on top. Flags only
// ever switch things on; an empty string flag leaves the file's value.
func (f Flags) Load() (Settings, error) {
	s, err := Load(f.Path)
	if err != nil {
		return Settings{}, err
	}
	if f.Level != "" {
		s.Level = f.Level
	}
	if f.LevelsDir != "" {
		s.LevelsDir = f.LevelsDir
	}
	s.Debug = s.Debug || f.Debug
	s.HotReload = s.HotReload || f.Watch
	if s.HotReload && s.LevelsDir == "" {
		s.LevelsDir = DefaultLevelsDir
	}
	return s, nil
}
