// File: lixenwraith/configutil/builder.go
package configutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// Builder provides a fluent interface for building a Resolver
type Builder struct {
	args      []string
	prog      string
	output    io.Writer
	exit      func(int)
	lookupEnv func(string) (string, bool)
	envPrefix string
	logger    *slog.Logger
	paths     []string
}

// NewBuilder creates a builder wired to the running process:
// os.Args, os.Stderr, os.Exit and os.LookupEnv.
func NewBuilder() *Builder {
	return &Builder{
		args:      os.Args[1:],
		prog:      filepath.Base(os.Args[0]),
		output:    os.Stderr,
		exit:      os.Exit,
		lookupEnv: os.LookupEnv,
	}
}

// WithArgs sets the command-line tokens, without the program name
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = slices.Clone(args)
	return b
}

// WithProgramName sets the name shown in usage and error messages
func (b *Builder) WithProgramName(name string) *Builder {
	b.prog = name
	return b
}

// WithOutput sets the stream receiving usage, help and command-line errors
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// WithExit sets the function terminating the process after help or a
// command-line error. If it returns, Resolve returns ErrExited.
func (b *Builder) WithExit(fn func(code int)) *Builder {
	b.exit = fn
	return b
}

// WithEnvLookup replaces os.LookupEnv as the environment source
func (b *Builder) WithEnvLookup(fn func(key string) (string, bool)) *Builder {
	b.lookupEnv = fn
	return b
}

// WithEnvPrefix prepends prefix to argument names when reading the environment.
// Example: "MYAPP_" makes argument "port" read from MYAPP_port
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	return b
}

// WithLogger sets the structured logger. By default, logs are discarded
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithPaths registers candidate configuration file paths
func (b *Builder) WithPaths(paths ...string) *Builder {
	b.paths = append(b.paths, paths...)
	return b
}

// Build creates the Resolver with all specified options
func (b *Builder) Build() *Resolver {
	r := &Resolver{
		args:      slices.Clone(b.args),
		prog:      b.prog,
		output:    b.output,
		exit:      b.exit,
		lookupEnv: b.lookupEnv,
		envPrefix: b.envPrefix,
		logger:    b.logger,
		paths:     slices.Clone(b.paths),
	}

	if r.output == nil {
		r.output = io.Discard
	}
	if r.exit == nil {
		r.exit = os.Exit
	}
	if r.lookupEnv == nil {
		r.lookupEnv = os.LookupEnv
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}

	return r
}
