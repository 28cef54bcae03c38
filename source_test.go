package configutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/configutil"
)

func TestMultiSourceConfiguration(t *testing.T) {
	t.Run("SourcePrecedence", func(t *testing.T) {
		path := writeConfig(t, "app.ini", "[test]\nboth = from-file\nall = from-file\nfileenv = from-file\n")

		te := &testEnv{env: map[string]string{
			"all":     "from-env",
			"fileenv": "from-env",
			"envonly": "from-env",
		}}
		r := newTestResolver(te, "--all", "from-cli", "--both", "from-cli")
		r.AddPath(path)
		r.AddSection("test", true).
			AddArgument("all", "").
			AddArgument("both", "").
			AddArgument("fileenv", "").
			AddArgument("envonly", "")

		result, err := r.Resolve()
		require.NoError(t, err)
		s, err := result.Section("test")
		require.NoError(t, err)

		tests := []struct {
			arg    string
			want   string
			source configutil.Source
			origin string
		}{
			{"all", "from-cli", configutil.SourceCLI, "--all"},
			{"both", "from-cli", configutil.SourceCLI, "--both"},
			{"fileenv", "from-file", configutil.SourceFile, path},
			{"envonly", "from-env", configutil.SourceEnv, "envonly"},
		}
		for _, tt := range tests {
			v, ok := s.Value(tt.arg)
			require.True(t, ok, tt.arg)
			assert.Equal(t, tt.want, v.Raw(), tt.arg)
			assert.Equal(t, tt.want, v.Interface(), tt.arg)
			assert.Equal(t, tt.source, v.Source(), tt.arg)
			assert.Equal(t, tt.origin, v.Origin(), tt.arg)
			assert.Equal(t, configutil.TypeString, v.Type(), tt.arg)
		}
	})

	t.Run("TypedAccessors", func(t *testing.T) {
		te := &testEnv{}
		r := newTestResolver(te)
		r.AddPath(writeConfig(t, "app.ini", fullConfig))
		registerSections(r)

		result, err := r.Resolve()
		require.NoError(t, err)
		s, _ := result.Section("section1")
		assert.Equal(t, "section1", s.Name())
		assert.Equal(t, []string{"arg1a", "arg1b", "arg1c"}, s.Names())

		v, ok := s.Get("arg1c")
		require.True(t, ok)
		assert.Equal(t, 1000, v)

		_, ok = s.Get("nope")
		assert.False(t, ok)
		_, ok = s.Source("nope")
		assert.False(t, ok)

		_, err = s.String("arg1c")
		assert.ErrorIs(t, err, configutil.ErrTypeMismatch)
		_, err = s.Int("arg1a")
		assert.ErrorIs(t, err, configutil.ErrTypeMismatch)
		_, err = s.Float("arg1c")
		assert.ErrorIs(t, err, configutil.ErrTypeMismatch)
		_, err = s.Bool("nope")
		assert.ErrorIs(t, err, configutil.ErrArgumentNotFound)
	})

	t.Run("ResultIsolation", func(t *testing.T) {
		te := &testEnv{}
		r := newTestResolver(te)
		r.AddPath(writeConfig(t, "app.ini", fullConfig))
		registerSections(r)

		result, err := r.Resolve()
		require.NoError(t, err)

		sections := result.Sections()
		sections[0] = "changed"
		assert.Equal(t, "section0", result.Sections()[0])

		s, _ := result.Section("section0")
		names := s.Names()
		names[0] = "changed"
		assert.Equal(t, "arg0a", s.Names()[0])
	})
}
