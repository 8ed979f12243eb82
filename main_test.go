package main

import (
	"testing"

	"github.com/atomicstack/menu-admin/internal/app"
	"github.com/atomicstack/menu-admin/internal/config"
	"github.com/atomicstack/menu-admin/internal/menuapi"
)

func TestProbeTerminalCoversStandardDescriptors(t *testing.T) {
	info := probeTerminal()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"/dev/stdin", "/dev/stdout", "/dev/stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			APIURL:     "http://menu.test",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"api":     "http://menu.test",
			"width":   "80",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--api", "http://menu.test"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["api"] != "http://menu.test" {
		t.Fatalf("expected api flag, got %v", flagsValue["api"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["api"] != "http://menu.test" {
		t.Fatalf("expected resolved api, got %v", payload["api"])
	}
	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestStartupTracePayloadDefaultsAPI(t *testing.T) {
	payload := startupTracePayload(config.Config{})
	if payload["api"] != menuapi.DefaultBaseURL {
		t.Fatalf("expected default api, got %v", payload["api"])
	}
}
