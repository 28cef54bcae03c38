package configutil

import (
	"fmt"
	"slices"
)

// Argument is one typed, named configuration value within a section.
type Argument struct {
	Name    string
	Help    string
	Type    Type
	Choices []string
}

// ArgumentOption customizes an Argument at registration.
type ArgumentOption func(*Argument)

// WithType sets the declared type. The default is TypeString.
func WithType(t Type) ArgumentOption {
	return func(a *Argument) {
		a.Type = t
	}
}

// WithChoices restricts the values accepted on the command line.
// Values from files and the environment are not checked against choices.
func WithChoices(choices ...string) ArgumentOption {
	return func(a *Argument) {
		a.Choices = slices.Clone(choices)
	}
}

// Section is a named group of arguments, mirroring one configuration file section.
// It is returned by Resolver.AddSection and used to add arguments.
type Section struct {
	resolver *Resolver
	name     string
	required bool
	args     []Argument
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Required reports the flag given at registration. It is informational:
// missing values fail resolution whether or not the section is required.
func (s *Section) Required() bool {
	return s.required
}

// Arguments returns a copy of the registered arguments in registration order.
func (s *Section) Arguments() []Argument {
	s.resolver.mutex.Lock()
	defer s.resolver.mutex.Unlock()

	out := make([]Argument, len(s.args))
	for i, arg := range s.args {
		arg.Choices = slices.Clone(arg.Choices)
		out[i] = arg
	}
	return out
}

// AddArgument registers an argument under the section and returns the section for chaining.
// Registering a name twice replaces the earlier declaration.
func (s *Section) AddArgument(name, help string, opts ...ArgumentOption) *Section {
	arg := Argument{Name: name, Help: help, Type: TypeString}
	for _, opt := range opts {
		opt(&arg)
	}

	r := s.resolver
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !isValidKeySegment(name) {
		r.errs = append(r.errs, fmt.Errorf("invalid argument name %q in section %q", name, s.name))
		return s
	}
	if reservedFlags[name] {
		r.errs = append(r.errs, fmt.Errorf("argument name %q in section %q is reserved", name, s.name))
		return s
	}
	if !arg.Type.valid() {
		r.errs = append(r.errs, fmt.Errorf("argument %q in section %q has unsupported type %d", name, s.name, int(arg.Type)))
		return s
	}

	idx := slices.IndexFunc(s.args, func(a Argument) bool { return a.Name == name })
	if idx >= 0 {
		r.logger.Warn("argument registered twice, replacing earlier declaration",
			"section", s.name, "argument", name)
		s.args[idx] = arg
		return s
	}
	s.args = append(s.args, arg)
	return s
}

// Command is a named sub-mode of the command line sharing the full argument schema.
type Command struct {
	Name string
	Help string
}

// AddPath appends a candidate configuration file path.
// Later paths override earlier ones for keys both define.
func (r *Resolver) AddPath(path string) {
	r.AddPaths(path)
}

// AddPaths appends candidate configuration file paths in order.
func (r *Resolver) AddPaths(paths ...string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.paths = append(r.paths, paths...)
}

// Paths returns the registered candidate paths.
func (r *Resolver) Paths() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return slices.Clone(r.paths)
}

// AddSection registers a section and returns its handle.
// Registering a name twice replaces the earlier declaration, keeping its
// position: the existing handle is cleared and returned, so every handle
// for a name refers to the registered section.
func (r *Resolver) AddSection(name string, required bool) *Section {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !isValidSectionName(name) {
		r.errs = append(r.errs, fmt.Errorf("invalid section name %q", name))
		return &Section{resolver: r, name: name, required: required}
	}

	idx := slices.IndexFunc(r.sections, func(s *Section) bool { return s.name == name })
	if idx >= 0 {
		r.logger.Warn("section registered twice, replacing earlier declaration", "section", name)
		section := r.sections[idx]
		section.required = required
		section.args = nil
		return section
	}

	section := &Section{resolver: r, name: name, required: required}
	r.sections = append(r.sections, section)
	return section
}

// Section returns the handle of a registered section.
func (r *Resolver) Section(name string) (*Section, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, s := range r.sections {
		if s.name == name {
			return s, nil
		}
	}
	return nil, &SectionNotFoundError{Section: name}
}

// AddCommand registers a sub-command. The first call switches the resolver
// into command mode, where a command token is required on the command line.
func (r *Resolver) AddCommand(name, help string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !isValidKeySegment(name) {
		r.errs = append(r.errs, fmt.Errorf("invalid command name %q", name))
		return
	}

	idx := slices.IndexFunc(r.commands, func(c Command) bool { return c.Name == name })
	if idx >= 0 {
		r.logger.Warn("command registered twice, replacing earlier declaration", "command", name)
		r.commands[idx] = Command{Name: name, Help: help}
		return
	}
	r.commands = append(r.commands, Command{Name: name, Help: help})
}

// checkFlagNames rejects an argument name shared by two sections, since both
// would map to the same flag and the same environment variable.
func checkFlagNames(sections []*Section) error {
	owner := make(map[string]string)
	for _, s := range sections {
		for _, arg := range s.args {
			if prev, exists := owner[arg.Name]; exists {
				return fmt.Errorf("argument %q is registered in sections %q and %q", arg.Name, prev, s.name)
			}
			owner[arg.Name] = s.name
		}
	}
	return nil
}
