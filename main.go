// Command menu-admin is a terminal console for editing a restaurant menu
// through its REST API.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/menu-admin/internal/app"
	"github.com/atomicstack/menu-admin/internal/config"
	"github.com/atomicstack/menu-admin/internal/logging"
	"github.com/atomicstack/menu-admin/internal/logging/events"
	"github.com/atomicstack/menu-admin/internal/menuapi"
)

func main() {
	runtimeCfg := config.MustLoad()
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	api := cfg.App.APIURL
	if api == "" {
		api = menuapi.DefaultBaseURL
	}
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"api":    api,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["terminal"] = probeTerminal()
	return payload
}

type terminalInfo struct {
	Source string         `json:"source,omitempty"`
	Width  int            `json:"width,omitempty"`
	Height int            `json:"height,omitempty"`
	Probes []terminalSize `json:"probes"`
}

type terminalSize struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal reports which standard descriptors are terminals and the
// size of the first one that answers.
func probeTerminal() terminalInfo {
	var info terminalInfo
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := terminalSize{Name: f.Name()}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			case info.Source == "":
				info.Source, info.Width, info.Height = probe.Name, width, height
				fallthrough
			default:
				probe.Width, probe.Height = width, height
			}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}
