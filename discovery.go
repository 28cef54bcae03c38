// FILE: lixenwraith/configutil/discovery.go
package configutil

import (
	"os"
	"path/filepath"
	"slices"
)

// DefaultPaths returns the conventional candidate INI paths for an application,
// lowest precedence first, ready for Resolver.AddPaths:
//
//	/etc/<app>/<app>.ini
//	$XDG_CONFIG_DIRS/<app>/<app>.ini (or /etc/xdg/<app>/<app>.ini)
//	$XDG_CONFIG_HOME/<app>/<app>.ini (or ~/.config/<app>/<app>.ini)
//	./<app>.ini
//
// Missing files are treated as empty during resolution.
func DefaultPaths(appName string) []string {
	file := appName + ".ini"
	paths := []string{filepath.Join("/etc", appName, file)}

	// XDG_CONFIG_DIRS is ordered most important first
	var systemDirs []string
	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		systemDirs = filepath.SplitList(xdgDirs)
	} else {
		systemDirs = []string{"/etc/xdg"}
	}
	slices.Reverse(systemDirs)
	for _, dir := range systemDirs {
		paths = append(paths, filepath.Join(dir, appName, file))
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName, file))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, file))
	}

	return append(paths, file)
}
