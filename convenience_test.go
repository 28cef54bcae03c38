package configutil_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustResolve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		te := &testEnv{}
		r := newTestResolver(te)
		r.AddPath(writeConfig(t, "app.ini", fullConfig))
		registerSections(r)

		result := r.MustResolve()
		assert.Equal(t, []string{"section0", "section1"}, result.Sections())
	})

	t.Run("Panics", func(t *testing.T) {
		te := &testEnv{}
		r := newTestResolver(te)
		r.AddPath(writeConfig(t, "app.ini", partialConfig))
		registerSections(r)

		assert.PanicsWithValue(t,
			`config resolution failed: missing configuration argument "arg0b"`,
			func() { r.MustResolve() })
	})
}

// TestExplain tests the provenance report
func TestExplain(t *testing.T) {
	te := &testEnv{env: map[string]string{"arg0b": "TRUE", "arg0c": "false", "arg1a": "envstring1a", "arg1b": "b"}}
	path := writeConfig(t, "app.ini", partialConfig)
	r := newTestResolver(te, "command2", "--arg1c", "7")
	r.AddPath(path)
	registerSections(r)
	registerCommands(r)

	result, err := r.Resolve()
	require.NoError(t, err)

	want := "command: command2\n" +
		"[section0]\n" +
		fmt.Sprintf("  arg0a = 1234.123 (float, file from %s)\n", path) +
		"  arg0b = true (bool, env from arg0b)\n" +
		"  arg0c = false (bool, env from arg0c)\n" +
		"[section1]\n" +
		"  arg1a = envstring1a (string, env from arg1a)\n" +
		"  arg1b = b (string, env from arg1b)\n" +
		"  arg1c = 7 (int, cli from --arg1c)\n"
	assert.Equal(t, want, result.Explain())
}
