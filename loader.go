// FILE: lixenwraith/configutil/loader.go
package configutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Supported configuration file formats
const (
	FormatINI  = "ini"
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// defaultSection holds keys that apply to every section, as in INI files.
var defaultSection = ini.DefaultSection

var errNestedValue = errors.New("nested values are not supported")

// fileValue is a raw value and the file it was read from
type fileValue struct {
	raw  string
	path string
}

// fileValues is the merged content of all loaded files: section -> key -> value.
// Keys are stored normalized; later files replace earlier values key by key.
type fileValues struct {
	sections map[string]map[string]fileValue
}

func newFileValues() *fileValues {
	return &fileValues{sections: make(map[string]map[string]fileValue)}
}

func (f *fileValues) set(section, key, raw, path string) {
	keys, exists := f.sections[section]
	if !exists {
		keys = make(map[string]fileValue)
		f.sections[section] = keys
	}
	keys[normalizeKey(key)] = fileValue{raw: raw, path: path}
}

// hasSection reports whether any loaded file declared the section.
func (f *fileValues) hasSection(section string) bool {
	_, exists := f.sections[section]
	return exists
}

// lookup finds key in section, falling back to the default section.
// Keys of an absent section are never found.
func (f *fileValues) lookup(section, key string) (string, string, bool) {
	keys, exists := f.sections[section]
	if !exists {
		return "", "", false
	}
	key = normalizeKey(key)
	if v, ok := keys[key]; ok {
		return v.raw, v.path, true
	}
	if v, ok := f.sections[defaultSection][key]; ok {
		return v.raw, v.path, true
	}
	return "", "", false
}

// loadFiles reads paths in order. Missing files are treated as empty.
func loadFiles(paths []string, logger *slog.Logger) (*fileValues, error) {
	values := newFileValues()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("configuration file not found, skipping", "path", path)
				continue
			}
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}

		format := detectFileFormat(path)
		if err := loadData(values, path, format, data); err != nil {
			return nil, fmt.Errorf("%w '%s': %w", ErrFileParse, path, err)
		}
		logger.Debug("configuration file loaded", "path", path, "format", format)
	}

	return values, nil
}

func loadData(values *fileValues, path, format string, data []byte) error {
	if format == FormatINI {
		return loadINI(values, path, data)
	}

	tree := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &tree); err != nil {
			return err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return err
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number text
		if err := decoder.Decode(&tree); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	return loadTree(values, path, tree)
}

// loadINI parses INI text the way Python-style INI readers do:
// `=` or `:` delimiters, %(name)s interpolation, indented continuation lines,
// no inline comments and surrounding quotes kept as part of the value.
func loadINI(values *fileValues, path string, data []byte) error {
	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:            true,
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
		PreserveSurroundedQuote:    true,
	}, data)
	if err != nil {
		return err
	}

	for _, section := range file.Sections() {
		keys := section.Keys()
		if section.Name() == defaultSection && len(keys) == 0 {
			continue
		}
		if _, exists := values.sections[section.Name()]; !exists {
			values.sections[section.Name()] = make(map[string]fileValue)
		}
		for _, key := range keys {
			values.set(section.Name(), key.Name(), key.String(), path)
		}
	}
	return nil
}

// loadTree maps a decoded TOML/YAML/JSON document onto sections: top-level
// tables are sections, top-level scalars belong to the default section.
func loadTree(values *fileValues, path string, tree map[string]any) error {
	for name, node := range tree {
		table, isTable := node.(map[string]any)
		if !isTable {
			raw, err := stringify(node)
			if err != nil {
				return fmt.Errorf("key %q: %w", name, err)
			}
			values.set(defaultSection, name, raw, path)
			continue
		}

		if _, exists := values.sections[name]; !exists {
			values.sections[name] = make(map[string]fileValue)
		}
		for key, v := range table {
			raw, err := stringify(v)
			if err != nil {
				return fmt.Errorf("key %q in section %q: %w", key, name, err)
			}
			values.set(name, key, raw, path)
		}
	}
	return nil
}

// stringify renders a decoded scalar as the raw text an INI file would hold.
func stringify(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case json.Number:
		return val.String(), nil
	case time.Time:
		return val.Format(time.RFC3339), nil
	case map[string]any, []any:
		return "", errNestedValue
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

// detectFileFormat determines format from file extension; anything unknown is INI
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatINI
	}
}
