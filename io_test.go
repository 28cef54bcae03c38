package configutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/configutil"
)

// TestAtomicSave tests that saved files resolve back to the same values
func TestAtomicSave(t *testing.T) {
	te := &testEnv{}
	r := newTestResolver(te, "--arg1a", "with spaces", "--arg1b", `"quoted"`, "--arg0a", "0.1")
	r.AddPath(writeConfig(t, "app.ini", fullConfig))
	registerSections(r)

	result, err := r.Resolve()
	require.NoError(t, err)

	for _, name := range []string{"saved.ini", "saved.toml", "saved.yaml", "saved.json"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "nested", name)
			require.NoError(t, result.Save(path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

			// No temporary files remain
			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1)

			reloaded := newTestResolver(&testEnv{})
			reloaded.AddPath(path)
			registerSections(reloaded)

			again, err := reloaded.Resolve()
			require.NoError(t, err)
			assertResult(t, expected{0.1, true, false, "with spaces", `"quoted"`, 1000}, again)
		})
	}
}

func TestSaveSpecialStrings(t *testing.T) {
	values := []string{
		`"quoted"`,
		`'single'`,
		"100%(pct)s",
		"a # b ; c",
		"first\nsecond",
		"tick`tock",
		"  padded\nmultiline  ",
	}

	for _, value := range values {
		te := &testEnv{}
		r := newTestResolver(te, "--arg1a", value)
		r.AddPath(writeConfig(t, "app.ini", fullConfig))
		registerSections(r)

		result, err := r.Resolve()
		require.NoError(t, err, value)

		path := filepath.Join(t.TempDir(), "saved.ini")
		require.NoError(t, result.Save(path), value)

		reloaded := newTestResolver(&testEnv{})
		reloaded.AddPath(path)
		registerSections(reloaded)

		again, err := reloaded.Resolve()
		require.NoError(t, err, value)
		s1, _ := again.Section("section1")
		got, _ := s1.String("arg1a")
		assert.Equal(t, value, got)
	}
}

func TestSaveSurroundingWhitespace(t *testing.T) {
	te := &testEnv{}
	r := newTestResolver(te, "--arg1a", "  padded ")
	r.AddPath(writeConfig(t, "app.ini", fullConfig))
	registerSections(r)

	result, err := r.Resolve()
	require.NoError(t, err)

	dir := t.TempDir()
	err = result.Save(filepath.Join(dir, "saved.ini"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arg1a")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a failed save leaves no file behind")

	// Structured formats quote strings and keep the spaces
	path := filepath.Join(dir, "saved.json")
	require.NoError(t, result.Save(path))
	reloaded := newTestResolver(&testEnv{})
	reloaded.AddPath(path)
	registerSections(reloaded)
	again, err := reloaded.Resolve()
	require.NoError(t, err)
	s1, _ := again.Section("section1")
	got, _ := s1.String("arg1a")
	assert.Equal(t, "  padded ", got)
}

func TestMarshal(t *testing.T) {
	te := &testEnv{}
	r := newTestResolver(te)
	r.AddPath(writeConfig(t, "app.ini", "[server]\nhost = example.com\nport = 80\n"))
	r.AddSection("server", true).
		AddArgument("host", "").
		AddArgument("port", "", configutil.WithType(configutil.TypeInt))

	result, err := r.Resolve()
	require.NoError(t, err)

	t.Run("INI", func(t *testing.T) {
		data, err := result.Marshal(configutil.FormatINI)
		require.NoError(t, err)
		assert.Contains(t, string(data), "[server]")
		assert.Contains(t, string(data), "host = example.com")
		assert.Contains(t, string(data), "port = 80")
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := result.Marshal(configutil.FormatJSON)
		require.NoError(t, err)
		assert.JSONEq(t, `{"server": {"host": "example.com", "port": 80}}`, string(data))
	})

	t.Run("YAML", func(t *testing.T) {
		data, err := result.Marshal(configutil.FormatYAML)
		require.NoError(t, err)
		assert.YAMLEq(t, "server:\n  host: example.com\n  port: 80\n", string(data))
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := result.Marshal("xml")
		assert.Error(t, err)
	})
}
