package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading presets from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new preset loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all preset files.
// Invalid files are skipped. Results are sorted by ID.
func (l *Loader) LoadAll() ([]Preset, error) {
	var presets []Preset

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		p, err := LoadFile(path)
		if err != nil {
			return nil
		}
		presets = append(presets, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("presets: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].ID < presets[j].ID
	})
	return presets, nil
}

// LoadByID loads a specific preset by ID from the loader root.
func (l *Loader) LoadByID(id string) (Preset, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("presets: %q not found in %s", id, l.Root)
}

// LoadFile loads a single preset file.
func LoadFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("presets: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return Preset{}, fmt.Errorf("presets: unsupported extension: %s", ext)
	}

	p, err := ParseYAML(data)
	if err != nil {
		return Preset{}, fmt.Errorf("presets: parsing file %s: %w", path, err)
	}
	p.FilePath = path
	return p, nil
}

// Resolve treats ref as a file path when it has a YAML extension or exists
// on disk, and as a builtin ID otherwise.
func Resolve(ref string) (Preset, error) {
	if isSupportedExtension(strings.ToLower(filepath.Ext(ref))) {
		return LoadFile(ref)
	}
	if _, err := os.Stat(ref); err == nil {
		return LoadFile(ref)
	}
	return Builtin(ref)
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
