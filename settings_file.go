package vlc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/20after4/configdir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// settingsFormat selects the on-disk encoding of a FileSettings.
type settingsFormat uint8

const (
	formatTOML settingsFormat = iota
	formatYAML
)

func formatForPath(path string) (settingsFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported settings file extension %q", filepath.Ext(path))
	}
}

// FileSettings is a SettingsStore persisted to a TOML or YAML file.
// Setting names are split on "/" into nested tables, so vlc/log_level is
// stored as log_level in the [vlc] table. Metadata is not persisted; it is
// registered again on every start.
type FileSettings struct {
	*MemorySettings
	path   string
	format settingsFormat
}

var _ SettingsSaver = (*FileSettings)(nil)

// DefaultSettingsPath returns settings.toml in the user's vlc config
// directory ($XDG_CONFIG_HOME/vlc on Linux).
func DefaultSettingsPath() string {
	return filepath.Join(configdir.LocalConfig("vlc"), "settings.toml")
}

// OpenFileSettings loads path if it exists. A missing file yields an empty
// store that is created on the first Save.
func OpenFileSettings(path string) (*FileSettings, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	f := &FileSettings{
		MemorySettings: NewMemorySettings(),
		path:           path,
		format:         format,
	}
	if err := f.Load(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the backing file path.
func (f *FileSettings) Path() string { return f.path }

// Load replaces the stored values with the file contents.
func (f *FileSettings) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.replace(make(map[string]any))
			return nil
		}
		return fmt.Errorf("reading settings: %w", err)
	}

	doc := make(map[string]any)
	switch f.format {
	case formatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return fmt.Errorf("parsing settings %s: %w", f.path, err)
	}

	values := make(map[string]any)
	flattenSettings("", doc, values)
	f.replace(values)
	return nil
}

// Save writes the stored values, replacing the file atomically.
func (f *FileSettings) Save() error {
	doc, err := nestSettings(f.snapshot())
	if err != nil {
		return err
	}

	var data []byte
	switch f.format {
	case formatYAML:
		data, err = yaml.Marshal(doc)
	default:
		data, err = toml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := configdir.MakePath(dir); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

func flattenSettings(prefix string, doc map[string]any, out map[string]any) {
	for k, v := range doc {
		name := k
		if prefix != "" {
			name = prefix + "/" + k
		}
		if table, ok := v.(map[string]any); ok {
			flattenSettings(name, table, out)
			continue
		}
		out[name] = v
	}
}

func nestSettings(values map[string]any) (map[string]any, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := make(map[string]any)
	for _, name := range names {
		parts := strings.Split(name, "/")
		table := doc
		for _, part := range parts[:len(parts)-1] {
			next, exists := table[part]
			if !exists {
				t := make(map[string]any)
				table[part] = t
				table = t
				continue
			}
			t, ok := next.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("setting %q conflicts with value %q", name, part)
			}
			table = t
		}
		leaf := parts[len(parts)-1]
		if _, exists := table[leaf]; exists {
			return nil, fmt.Errorf("setting %q conflicts with a table of the same name", name)
		}
		table[leaf] = values[name]
	}
	return doc, nil
}
