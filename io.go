// File: lixenwraith/configutil/io.go
package configutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// errINIWhitespace reports a value INI cannot carry: readers trim surrounding
// whitespace and keep surrounding quotes, so no spelling reads back unchanged.
var errINIWhitespace = errors.New("surrounding whitespace cannot be stored in INI")

// Save writes the resolved values to a configuration file atomically.
// The format follows the file extension (INI unless .toml, .yaml/.yml or .json),
// so resolving again with the same registry reproduces the values.
// INI cannot hold a string with surrounding whitespace unless it also spans
// lines; saving one to INI fails without touching path.
func (r *Result) Save(path string) error {
	data, err := r.Marshal(detectFileFormat(path))
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// Marshal renders the resolved values in the given format.
// The selected command is not part of the output.
func (r *Result) Marshal(format string) ([]byte, error) {
	switch format {
	case FormatINI:
		return r.marshalINI()
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(r.tree()); err != nil {
			return nil, fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(r.tree())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(r.tree(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func (r *Result) marshalINI() ([]byte, error) {
	file := ini.Empty()
	for _, name := range r.names {
		section, err := file.NewSection(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create section %q: %w", name, err)
		}
		values := r.sections[name]
		for _, arg := range values.names {
			val := formatValue(values.values[arg].value)
			if !iniPreserves(val) {
				return nil, fmt.Errorf("key %q in section %q: %w", arg, name, errINIWhitespace)
			}
			if _, err := section.NewKey(arg, val); err != nil {
				return nil, fmt.Errorf("failed to write key %q in section %q: %w", arg, name, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to marshal config data to INI: %w", err)
	}
	return buf.Bytes(), nil
}

// iniPreserves reports whether val survives an INI write and read.
// Values with a newline or backtick are written triple-quoted and keep their spaces.
func iniPreserves(val string) bool {
	return strings.TrimSpace(val) == val || strings.ContainsAny(val, "\n`")
}

func (r *Result) tree() map[string]any {
	tree := make(map[string]any, len(r.sections))
	for name, s := range r.sections {
		tree[name] = s.toMap()
	}
	return tree
}

// atomicWriteFile replaces path with data through a synced temporary file
// in the same directory, so readers see either the old or the new content.
func atomicWriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write '%s': %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync '%s': %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close '%s': %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace '%s': %w", path, err)
	}
	return nil
}
