package levels

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

// Ext is the file extension of level files.
const Ext = ".txt"

// Default is the level loaded when none is named.
const Default = "level1"

var ErrLevelNotFound = errors.New("level not found")

// Parse splits a level file into rows. Carriage returns are dropped and a
// single trailing newline does not produce an empty row. Lines starting with
// '#' are comments only in the header before the first grid row; once the
// grid starts every line is a row, since '#' is empty space in a cell.
func Parse(data []byte) []string {
	data = bytes.ReplaceAll(data, []byte("\r"), nil)
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	start := 0
	for start < len(lines) && strings.HasPrefix(lines[start], "#") {
		start++
	}
	return append(make([]string, 0, len(lines)-start), lines[start:]...)
}

// List returns the names of the embedded levels, without extension, sorted.
func List() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads a level by name. When dir is set, a file of that name in dir
// overrides the embedded copy. The extension is optional.
func Load(dir, name string) ([]string, error) {
	if name == "" {
		name = Default
	}
	file := name
	if filepath.Ext(file) != Ext {
		file += Ext
	}

	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, file))
		switch {
		case err == nil:
			return Parse(data), nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("levels: read %s: %w", file, err)
		}
	}

	data, err := fs.ReadFile(LevelsFS, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("levels: %s: %w", name, ErrLevelNotFound)
		}
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	return Parse(data), nil
}

// NameOf returns the level name for a level file path.
func NameOf(path string) string {
	return strings.TrimSuffix(filepath.Base(path), Ext)
}
