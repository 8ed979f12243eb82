package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/atomicstack/menu-admin/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envPrefix          = "MENU_ADMIN_"
	devServerEnvPrefix = "MENU_DEVSERVER_"
	dotEnvFile         = ".env"
)

// environment holds the MENU_ADMIN_* defaults that flags override.
type environment struct {
	API     string        `env:"API"`
	Refresh time.Duration `env:"REFRESH"`
	Width   int           `env:"WIDTH"`
	Height  int           `env:"HEIGHT"`
	Footer  bool          `env:"FOOTER"`
	Trace   bool          `env:"TRACE"`
	Verbose bool          `env:"VERBOSE"`
	LogFile string        `env:"LOG_FILE"`
}

// Load parses configuration from CLI arguments, the environment and an
// optional .env file in the working directory.
func Load() (Config, error) {
	environ, err := withDotEnv(dotEnvFile, os.Environ())
	if err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], environ)
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	var defaults environment
	if err := parseEnv(environ, envPrefix, &defaults); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("menu-admin", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	apiURL := fs.String("api", defaults.API, "base URL of the menu API (default http://localhost:8000)")
	refresh := fs.Duration("refresh", defaults.Refresh, "poll the menu at this interval (0 disables auto refresh)")
	width := fs.Int("width", defaults.Width, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", defaults.Height, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", defaults.Footer, "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", defaults.Trace, "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", defaults.Verbose, "print success messages for actions")
	logFile := fs.String("log-file", defaults.LogFile, "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			APIURL:     strings.TrimSpace(*apiURL),
			Refresh:    *refresh,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"api":     *apiURL,
			"refresh": refresh.String(),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DevServer configures the menu-devserver binary.
type DevServer struct {
	Addr    string `env:"ADDR" envDefault:":8000"`
	DataDir string `env:"DATA_DIR" envDefault:"data"`
	LogFile string `env:"LOG_FILE"`
	Trace   bool   `env:"TRACE"`
}

// LoadDevServer reads dev server settings from the command line, the
// environment and an optional .env file.
func LoadDevServer() (DevServer, error) {
	environ, err := withDotEnv(dotEnvFile, os.Environ())
	if err != nil {
		return DevServer{}, err
	}
	return LoadDevServerArgs(os.Args[1:], environ)
}

// LoadDevServerArgs is LoadDevServer with explicit inputs.
func LoadDevServerArgs(args []string, environ []string) (DevServer, error) {
	var cfg DevServer
	if err := parseEnv(environ, devServerEnvPrefix, &cfg); err != nil {
		return DevServer{}, err
	}
	fs := flag.NewFlagSet("menu-devserver", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding menu.json and uploads")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "path to the log file")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "enable verbose JSON trace logging")
	if err := fs.Parse(args); err != nil {
		return DevServer{}, err
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return DevServer{}, errors.New("addr must not be empty")
	}
	return cfg, nil
}

func parseEnv(environ []string, prefix string, target interface{}) error {
	opts := env.Options{Environment: envMap(environ), Prefix: prefix}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

func envMap(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// withDotEnv appends the entries of path that environ does not already set.
// A missing file is not an error.
func withDotEnv(path string, environ []string) ([]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return environ, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	set := envMap(environ)
	merged := append([]string(nil), environ...)
	for key, value := range values {
		if _, ok := set[key]; ok {
			continue
		}
		merged = append(merged, key+"="+value)
	}
	return merged, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Refresh < 0 {
		return fmt.Errorf("refresh must be >= 0 (got %s)", cfg.App.Refresh)
	}
	if cfg.App.APIURL != "" {
		u, err := url.Parse(cfg.App.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("api must be an absolute URL (got %q)", cfg.App.APIURL)
		}
	}
	return nil
}
