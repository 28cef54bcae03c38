// File: lixenwraith/configutil/type.go
package configutil

import (
	"errors"
	"strconv"
	"strings"
)

// Type is the declared target type of an argument.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeFloat
	TypeBool
)

var errInvalidBool = errors.New(`expected "true" or "false"`)

// String makes Type satisfy the fmt.Stringer interface.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

func (t Type) valid() bool {
	return t >= TypeString && t <= TypeBool
}

// coerce converts a raw string to the Go value of the given type:
// string, int, float64 or bool.
// Booleans are matched as case-insensitive literals, never evaluated.
func coerce(raw string, t Type) (any, error) {
	switch t {
	case TypeString:
		return raw, nil
	case TypeInt:
		return strconv.Atoi(strings.TrimSpace(raw))
	case TypeFloat:
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	case TypeBool:
		s := strings.TrimSpace(raw)
		switch {
		case strings.EqualFold(s, "true"):
			return true, nil
		case strings.EqualFold(s, "false"):
			return false, nil
		}
		return nil, errInvalidBool
	default:
		return nil, errors.New("unsupported type")
	}
}

// formatValue renders a coerced value back to the text coerce accepts.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
