// File: lixenwraith/configutil/convenience.go
package configutil

import (
	"fmt"
	"strings"
)

// MustResolve is like Resolve but panics on error.
// Command-line errors and help requests still end in the exit function first.
func (r *Resolver) MustResolve() *Result {
	result, err := r.Resolve()
	if err != nil {
		panic(fmt.Sprintf("config resolution failed: %v", err))
	}
	return result
}

// Explain returns a report of every resolved value and the source that supplied it,
// in registration order.
func (r *Result) Explain() string {
	var b strings.Builder
	if r.command != "" {
		fmt.Fprintf(&b, "command: %s\n", r.command)
	}

	for _, name := range r.names {
		s := r.sections[name]
		fmt.Fprintf(&b, "[%s]\n", name)
		for _, arg := range s.names {
			v := s.values[arg]
			fmt.Fprintf(&b, "  %s = %s (%s, %s from %s)\n", arg, formatValue(v.value), v.typ, v.source, v.origin)
		}
	}

	return b.String()
}
