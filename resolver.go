// FILE: lixenwraith/configutil/resolver.go
package configutil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Resolver owns the registry of sections, commands and candidate configuration
// file paths, and resolves them against the process inputs.
//
// To create a new Resolver, call [New] or [NewBuilder].
type Resolver struct {
	mutex    sync.Mutex
	paths    []string
	sections []*Section // registration order
	commands []Command
	errs     []error // registration errors, reported by Resolve

	// Collaborators, set by the Builder.
	args      []string
	prog      string
	output    io.Writer
	exit      func(code int)
	lookupEnv func(key string) (string, bool)
	envPrefix string
	logger    *slog.Logger
}

// New creates a Resolver reading os.Args and the process environment.
func New() *Resolver {
	return NewBuilder().Build()
}

// Resolve parses the command line, loads the configuration files and computes
// the typed value of every registered argument with precedence
// CLI > configuration file > environment variable.
//
// Command-line syntax errors and help requests are reported on the output
// stream and end in the exit function (status 2 and 0). If the exit function
// returns, Resolve returns ErrExited.
//
// Resolution is all-or-nothing: on error no Result is returned.
func (r *Resolver) Resolve() (*Result, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if len(r.errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrRegistration, errors.Join(r.errs...))
	}
	if err := checkFlagNames(r.sections); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistration, err)
	}

	inv, err := r.parseCommandLine()
	if err != nil {
		return nil, err
	}

	paths := r.paths
	if inv.configPath != "" {
		paths = []string{inv.configPath}
	}
	if len(paths) == 0 {
		return nil, ErrNoConfigPath
	}

	files, err := loadFiles(paths, r.logger)
	if err != nil {
		return nil, err
	}

	result := &Result{
		command:  inv.command,
		sections: make(map[string]*SectionValues, len(r.sections)),
	}
	for _, section := range r.sections {
		values, err := r.resolveSection(section, inv, files)
		if err != nil {
			return nil, err
		}
		result.names = append(result.names, section.name)
		result.sections[section.name] = values
	}

	r.logger.Debug("configuration resolved", "command", inv.command, "sections", len(result.names))
	return result, nil
}

func (r *Resolver) resolveSection(section *Section, inv *invocation, files *fileValues) (*SectionValues, error) {
	values := &SectionValues{
		name:   section.name,
		values: make(map[string]Value, len(section.args)),
	}

	for _, arg := range section.args {
		raw, source, origin, err := r.lookup(section, arg, inv, files)
		if err != nil {
			return nil, err
		}

		v, err := coerce(raw, arg.Type)
		if err != nil {
			return nil, &CoercionError{
				Section:  section.name,
				Argument: arg.Name,
				Value:    raw,
				Type:     arg.Type,
				Err:      err,
			}
		}

		r.logger.Debug("argument resolved",
			"section", section.name, "argument", arg.Name, "source", source, "origin", origin)

		values.names = append(values.names, arg.Name)
		values.values[arg.Name] = Value{
			raw:    raw,
			value:  v,
			typ:    arg.Type,
			source: source,
			origin: origin,
		}
	}

	return values, nil
}

// lookup returns the effective raw value of one argument and where it came from.
func (r *Resolver) lookup(section *Section, arg Argument, inv *invocation, files *fileValues) (string, Source, string, error) {
	if raw, ok := inv.flags[arg.Name]; ok {
		return raw, SourceCLI, "--" + arg.Name, nil
	}

	if raw, path, ok := files.lookup(section.name, arg.Name); ok {
		return raw, SourceFile, path, nil
	}

	envName := r.envPrefix + arg.Name
	if raw, ok := r.lookupEnv(envName); ok && raw != "" {
		return raw, SourceEnv, envName, nil
	}

	if !files.hasSection(section.name) {
		return "", "", "", &MissingSectionError{Section: section.name}
	}
	return "", "", "", &MissingArgumentError{Section: section.name, Argument: arg.Name}
}
