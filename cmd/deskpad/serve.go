// Package main runs the DeskPad server, agent and settings tools.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/deskpad/internal/app"
	"github.com/frudas24/deskpad/internal/config"
	"github.com/frudas24/deskpad/internal/session"
	"github.com/frudas24/deskpad/internal/settings"
	"github.com/frudas24/deskpad/internal/wininput"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newServeCmd builds the serve command.
func newServeCmd() *cobra.Command {
	var staticDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the touchpad UI and route input to the target device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), staticDir)
		},
	}
	cmd.Flags().StringVar(&staticDir, "static", "", "serve UI assets from this directory instead of the embedded copy")
	return cmd
}

// runServe wires the application and blocks until shutdown.
func runServe(parent context.Context, staticDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logStartup(cfg)

	store, err := settings.Open(cfg.SettingsPath)
	if err != nil {
		return err
	}

	sess := session.NewOpen()
	if cfg.PasswordMode == config.PasswordRequired {
		sess = session.New(cfg.UIPassword)
	}

	injector, err := wininput.NewInjector()
	if err != nil {
		log.Warnf("injector: %v; the local device is unavailable", err)
		injector = nil
	}

	appInstance, err := app.New(cfg, sess, store, injector)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, staticDir)
	return listenUntilDone(parent, &http.Server{Addr: cfg.ListenAddr, Handler: mux})
}

// listenUntilDone serves until interrupted, then shuts the server down.
func listenUntilDone(parent context.Context, server *http.Server) error {
	if parent == nil {
		parent = context.Background()
	}
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("DeskPad starting")
	logEnvStatus(cfg)
	log.Printf("settings: %s", cfg.SettingsPath)
	log.Printf("target device: %s", cfg.Target)
	if cfg.RelayURL != "" {
		log.Printf("relay: %s", cfg.RelayURL)
	}
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found and required values are set.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if cfg.PasswordMode == config.PasswordNone {
		log.Warn("env PASSWORD_MODE: none (no authentication)")
		return
	}
	log.Printf("env UI_PASSWORD: set")
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
