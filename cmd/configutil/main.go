// FILE: cmd/configutil/main.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/configutil"
)

// AppConfig is the statically typed view of the resolved configuration
type AppConfig struct {
	Command string `config:"command"`

	Server struct {
		Host  string `config:"host"`
		Port  int    `config:"port"`
		Debug bool   `config:"debug"`
	} `config:"server"`

	Database struct {
		URL      string  `config:"url"`
		MaxConns int     `config:"max_conns"`
		Timeout  float64 `config:"timeout"`
	} `config:"database"`

	Log struct {
		Level string `config:"level"`
	} `config:"log"`
}

func main() {
	// CONFIGUTIL_LOG_LEVEL=debug shows how every value was resolved
	level := slog.LevelWarn
	if v := os.Getenv("CONFIGUTIL_LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring CONFIGUTIL_LOG_LEVEL: %v\n", err)
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	r := configutil.NewBuilder().
		WithLogger(logger).
		WithPaths(configutil.DefaultPaths("configutil")...).
		Build()

	r.AddSection("server", true).
		AddArgument("host", "listen address").
		AddArgument("port", "listen port", configutil.WithType(configutil.TypeInt)).
		AddArgument("debug", "enable debug endpoints", configutil.WithType(configutil.TypeBool))

	r.AddSection("database", true).
		AddArgument("url", "database connection URL").
		AddArgument("max_conns", "connection pool size", configutil.WithType(configutil.TypeInt)).
		AddArgument("timeout", "query timeout in seconds", configutil.WithType(configutil.TypeFloat))

	r.AddSection("log", false).
		AddArgument("level", "log verbosity", configutil.WithChoices("debug", "info", "warn", "error"))

	r.AddCommand("serve", "run the server")
	r.AddCommand("check", "validate the configuration and exit")
	r.AddCommand("dump", "print the resolved configuration as INI")

	result, err := r.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configutil: %v\n", err)
		var missing *configutil.MissingArgumentError
		if errors.As(err, &missing) {
			fmt.Fprintf(os.Stderr, "Set --%s, add it to section [%s] of a config file, or export %s.\n",
				missing.Argument, missing.Section, missing.Argument)
		}
		os.Exit(1)
	}

	var cfg AppConfig
	if err := result.Decode(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "configutil: %v\n", err)
		os.Exit(1)
	}

	switch cfg.Command {
	case "serve":
		fmt.Printf("Serving on %s:%d (debug=%v, log=%s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.Debug, cfg.Log.Level)
		fmt.Printf("Database: %s (max_conns=%d, timeout=%gs)\n", cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.Timeout)
	case "check":
		fmt.Print(result.Explain())
	case "dump":
		data, err := result.Marshal(configutil.FormatINI)
		if err != nil {
			fmt.Fprintf(os.Stderr, "configutil: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	}
}
