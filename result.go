package configutil

import (
	"fmt"
	"slices"
)

// Source represents where an effective value came from
type Source string

const (
	// SourceCLI represents values supplied as command-line flags
	SourceCLI Source = "cli"
	// SourceFile represents values loaded from a configuration file
	SourceFile Source = "file"
	// SourceEnv represents values read from environment variables
	SourceEnv Source = "env"
)

// Value is one resolved argument: the coerced value, its raw text and provenance.
type Value struct {
	raw    string
	value  any
	typ    Type
	source Source
	origin string // flag, file path or environment variable name
}

// Raw returns the text the value was coerced from.
func (v Value) Raw() string { return v.raw }

// Interface returns the coerced value: string, int, float64 or bool.
func (v Value) Interface() any { return v.value }

// Type returns the declared type.
func (v Value) Type() Type { return v.typ }

// Source returns the source that supplied the value.
func (v Value) Source() Source { return v.source }

// Origin names the flag, file path or environment variable that supplied the value.
func (v Value) Origin() string { return v.origin }

// Result is the read-only outcome of a resolution: one SectionValues per
// registered section plus the selected command.
// It is never modified after Resolve returns and is safe for concurrent use.
type Result struct {
	command  string
	names    []string
	sections map[string]*SectionValues
}

// Command returns the selected sub-command, or "" when no commands were registered.
func (r *Result) Command() string {
	return r.command
}

// Sections returns the section names in registration order.
func (r *Result) Sections() []string {
	return slices.Clone(r.names)
}

// Section returns the values of a registered section.
func (r *Result) Section(name string) (*SectionValues, error) {
	s, ok := r.sections[name]
	if !ok {
		return nil, &SectionNotFoundError{Section: name}
	}
	return s, nil
}

// SectionValues holds the typed values of one section.
type SectionValues struct {
	name   string
	names  []string
	values map[string]Value
}

// Name returns the section name.
func (s *SectionValues) Name() string {
	return s.name
}

// Names returns the argument names in registration order.
func (s *SectionValues) Names() []string {
	return slices.Clone(s.names)
}

// Value returns the resolved value of an argument with its provenance.
func (s *SectionValues) Value(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Get returns the coerced value of an argument.
func (s *SectionValues) Get(name string) (any, bool) {
	v, ok := s.values[name]
	if !ok {
		return nil, false
	}
	return v.value, true
}

// Source returns the source that supplied an argument.
func (s *SectionValues) Source(name string) (Source, bool) {
	v, ok := s.values[name]
	if !ok {
		return "", false
	}
	return v.source, true
}

// String returns a string argument.
func (s *SectionValues) String(name string) (string, error) {
	v, err := s.typed(name, TypeString)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Int returns an int argument.
func (s *SectionValues) Int(name string) (int, error) {
	v, err := s.typed(name, TypeInt)
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// Float returns a float argument.
func (s *SectionValues) Float(name string) (float64, error) {
	v, err := s.typed(name, TypeFloat)
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// Bool returns a bool argument.
func (s *SectionValues) Bool(name string) (bool, error) {
	v, err := s.typed(name, TypeBool)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (s *SectionValues) typed(name string, t Type) (any, error) {
	v, ok := s.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in section %q", ErrArgumentNotFound, name, s.name)
	}
	if v.typ != t {
		return nil, fmt.Errorf("%w: %q in section %q is %s, not %s", ErrTypeMismatch, name, s.name, v.typ, t)
	}
	return v.value, nil
}

// toMap returns the coerced values keyed by argument name.
func (s *SectionValues) toMap() map[string]any {
	m := make(map[string]any, len(s.values))
	for name, v := range s.values {
		m[name] = v.value
	}
	return m
}
