// File: lixenwraith/configutil/doc.go

// Package configutil resolves application settings from three sources:
// command-line flags, INI configuration files and environment variables,
// into a single typed, read-only result grouped by section.
//
// Features:
//   - Fixed precedence: command line, then configuration file, then environment
//   - Typed arguments (string, int, float, bool) with command-line choice sets
//   - Optional sub-commands sharing the full flag set
//   - Multiple candidate files merged key by key, last file wins
//   - INI by default, TOML/YAML/JSON selected by file extension
//   - Source tracking to see where values originated
//   - Decoding into structs and saving resolved values back to a file
//
// Quick Start:
//
//	r := configutil.New()
//	r.AddPaths(configutil.DefaultPaths("myapp")...)
//
//	r.AddSection("server", true).
//	    AddArgument("host", "listen address").
//	    AddArgument("port", "listen port", configutil.WithType(configutil.TypeInt))
//
//	r.AddSection("log", false).
//	    AddArgument("level", "log level", configutil.WithChoices("debug", "info", "warn"))
//
//	result, err := r.Resolve()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	server, _ := result.Section("server")
//	port, _ := server.Int("port")
//
// Precedence (highest to lowest):
//  1. Command-line flags (--port 9090)
//  2. Configuration file ([server] port = 9090); --config replaces the candidate paths
//  3. Environment variables named after the argument (port=9090)
//
// An argument missing from all three fails resolution with a MissingArgumentError,
// or a MissingSectionError when no loaded file declares its section.
//
// Command-line errors print a usage message and terminate with status 2;
// -h/--help prints help and terminates with status 0. Both go through the
// exit function set on the Builder, which tests can replace.
package configutil
