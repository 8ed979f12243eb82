package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.APIURL != "" || cfg.App.Refresh != 0 || cfg.App.ShowFooter {
		t.Fatalf("unexpected defaults: %#v", cfg.App)
	}
	if cfg.Flags["refresh"] != "0s" {
		t.Fatalf("expected refresh flag 0s, got %q", cfg.Flags["refresh"])
	}
}

func TestLoadArgsEnvironmentDefaults(t *testing.T) {
	environ := []string{
		"MENU_ADMIN_API=http://menu.test:9000",
		"MENU_ADMIN_REFRESH=5s",
		"MENU_ADMIN_WIDTH=120",
		"MENU_ADMIN_FOOTER=true",
		"MENU_ADMIN_LOG_FILE=/tmp/menu.log",
		"UNRELATED=1",
		"broken-entry",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.APIURL != "http://menu.test:9000" {
		t.Fatalf("expected api from env, got %q", cfg.App.APIURL)
	}
	if cfg.App.Refresh != 5*time.Second {
		t.Fatalf("expected refresh 5s, got %s", cfg.App.Refresh)
	}
	if cfg.App.Width != 120 || !cfg.App.ShowFooter {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if cfg.Logging.FilePath != "/tmp/menu.log" {
		t.Fatalf("expected log file from env, got %q", cfg.Logging.FilePath)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{"MENU_ADMIN_API=http://env.test", "MENU_ADMIN_VERBOSE=false"}
	args := []string{"--api", "http://flag.test/", "--verbose", "--trace"}
	cfg, err := LoadArgs(args, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.APIURL != "http://flag.test/" {
		t.Fatalf("expected api flag to win, got %q", cfg.App.APIURL)
	}
	if !cfg.App.Verbose || !cfg.Features.Verbose || !cfg.Logging.Trace {
		t.Fatalf("expected verbose and trace enabled: %#v", cfg)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"negative width": {"--width", "-1"},
		"negative poll":  {"--refresh", "-2s"},
		"relative api":   {"--api", "localhost"},
		"unknown flag":   {"--socket", "x"},
	}
	for name, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := LoadArgs(nil, []string{"MENU_ADMIN_WIDTH=wide"}); err == nil {
		t.Fatalf("expected error for malformed env value")
	}
}

func TestLoadDevServerArgs(t *testing.T) {
	cfg, err := LoadDevServerArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8000" || cfg.DataDir != "data" {
		t.Fatalf("unexpected defaults %#v", cfg)
	}

	cfg, err = LoadDevServerArgs([]string{"--data-dir", "/srv/menu"}, []string{"MENU_DEVSERVER_ADDR=127.0.0.1:9999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" || cfg.DataDir != "/srv/menu" {
		t.Fatalf("unexpected config %#v", cfg)
	}

	if _, err := LoadDevServerArgs([]string{"--addr", " "}, nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestWithDotEnvSitsBelowEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "MENU_ADMIN_API=http://dotenv.test\nMENU_ADMIN_WIDTH=90\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	environ, err := withDotEnv(path, []string{"MENU_ADMIN_API=http://real.test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.APIURL != "http://real.test" {
		t.Fatalf("expected real environment to win, got %q", cfg.App.APIURL)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected width from .env, got %d", cfg.App.Width)
	}
}

func TestWithDotEnvMissingFile(t *testing.T) {
	environ, err := withDotEnv(filepath.Join(t.TempDir(), "absent.env"), []string{"A=1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(environ) != 1 || environ[0] != "A=1" {
		t.Fatalf("expected environment unchanged, got %v", environ)
	}
}
