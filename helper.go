// File: lixenwraith/configutil/helper.go
package configutil

import "strings"

// reservedFlags are flag names the resolver defines itself.
var reservedFlags = map[string]bool{
	"config": true,
	"help":   true,
}

// isValidKeySegment checks that s can serve both as a `--flag` name and as a bare INI key.
func isValidKeySegment(s string) bool {
	if len(s) == 0 || s[0] == '-' {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}

// isValidSectionName allows dot-separated key segments, e.g. "server.tls".
func isValidSectionName(s string) bool {
	if s == "" {
		return false
	}
	for _, segment := range strings.Split(s, ".") {
		if !isValidKeySegment(segment) {
			return false
		}
	}
	return true
}

// normalizeKey folds file keys so lookups are case-insensitive.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
