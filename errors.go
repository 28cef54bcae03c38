// FILE: lixenwraith/configutil/errors.go
package configutil

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below match their sentinel with errors.Is.
var (
	ErrMissingArgument  = errors.New("missing configuration argument")
	ErrMissingSection   = errors.New("missing configuration section")
	ErrSectionNotFound  = errors.New("section not registered")
	ErrCoercion         = errors.New("type coercion failed")
	ErrNoConfigPath     = errors.New("missing path to configuration file")
	ErrRegistration     = errors.New("invalid registration")
	ErrExited           = errors.New("command line handling terminated the process")
	ErrFileParse        = errors.New("failed to parse configuration file")
	ErrArgumentNotFound = errors.New("argument not registered")
	ErrTypeMismatch     = errors.New("argument has a different type")
)

// MissingArgumentError reports an argument that no source supplied.
type MissingArgumentError struct {
	Section  string
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing configuration argument %q", e.Argument)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// MissingSectionError reports a registered section absent from every loaded file.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("missing section %q in configuration", e.Section)
}

func (e *MissingSectionError) Is(target error) bool {
	return target == ErrMissingSection
}

// SectionNotFoundError reports a lookup of a section that was never registered.
type SectionNotFoundError struct {
	Section string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q does not exist in configuration", e.Section)
}

func (e *SectionNotFoundError) Is(target error) bool {
	return target == ErrSectionNotFound
}

// CoercionError reports a raw value that cannot be converted to the declared type.
type CoercionError struct {
	Section  string
	Argument string
	Value    string
	Type     Type
	Err      error
}

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("cannot convert %q to %s for argument %q in section %q", e.Value, e.Type, e.Argument, e.Section)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
