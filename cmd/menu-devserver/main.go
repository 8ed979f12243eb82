// Command menu-devserver serves the menu API from a JSON file for local
// development of the admin console.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atomicstack/menu-admin/internal/config"
	"github.com/atomicstack/menu-admin/internal/devserver"
	"github.com/atomicstack/menu-admin/internal/logging"
	"github.com/atomicstack/menu-admin/internal/logging/events"
	"github.com/atomicstack/menu-admin/internal/menustore"
)

func main() {
	cfg, err := config.LoadDevServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.LogFile)
	logging.SetTraceEnabled(cfg.Trace)
	events.App.Start(map[string]interface{}{"argv": os.Args[1:], "config": cfg})

	err = run(cfg)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.DevServer) error {
	store, err := menustore.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	srv, err := devserver.New(store, cfg.DataDir)
	if err != nil {
		return err
	}
	gin.SetMode(gin.ReleaseMode)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "menu-devserver listening on %s (data in %s)\n", cfg.Addr, store.Path())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
