// FILE: lixenwraith/configutil/decode.go
package configutil

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Scan and Decode.
const TagName = "config"

// Scan decodes one section into the target struct or map.
// Fields are matched to argument names through the `config` tag,
// falling back to a case-insensitive match on the field name.
//
//	var server struct {
//	    Host string        `config:"host"`
//	    Port int           `config:"port"`
//	    Wait time.Duration `config:"wait"`
//	}
//	err := result.Scan("server", &server)
func (r *Result) Scan(section string, target any) error {
	s, err := r.Section(section)
	if err != nil {
		return err
	}
	if err := decode(s.toMap(), target); err != nil {
		return fmt.Errorf("decode failed for section %q: %w", section, err)
	}
	return nil
}

// Decode decodes the whole result into target: one nested struct or map
// per section, keyed by section name, plus the selected command under "command".
func (r *Result) Decode(target any) error {
	tree := make(map[string]any, len(r.sections)+1)
	for name, s := range r.sections {
		tree[name] = s.toMap()
	}
	if _, taken := tree["command"]; !taken {
		tree["command"] = r.command
	}

	if err := decode(tree, target); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

func decode(input map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		ZeroFields:       true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	return decoder.Decode(input)
}

// decodeHook converts string arguments into richer field types
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringParseHook(45, parseIP), // max IPv6 text length
		stringParseHook(49, parseCIDR),
		stringParseHook(2048, url.Parse),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringParseHook decodes a string into a T or *T field with parse.
// Longer input than maxLen is rejected before parsing.
func stringParseHook[T any](maxLen int, parse func(string) (*T, error)) mapstructure.DecodeHookFunc {
	want := reflect.TypeOf((*T)(nil)).Elem()
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		if t != want && !(isPtr && t.Elem() == want) {
			return data, nil
		}

		str := data.(string)
		if len(str) > maxLen {
			return nil, fmt.Errorf("%s value too long: %d bytes", want, len(str))
		}
		v, err := parse(str)
		if err != nil {
			return nil, err
		}
		if isPtr {
			return v, nil
		}
		return *v, nil
	}
}

func parseIP(s string) (*net.IP, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address: %s", s)
	}
	return &ip, nil
}

func parseCIDR(s string) (*net.IPNet, error) {
	_, ipnet, err := net.ParseCIDR(s)
	if err != nil {
		return nil, fmt.Errorf("invalid CIDR: %w", err)
	}
	return ipnet, nil
}
