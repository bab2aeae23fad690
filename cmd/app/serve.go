package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/timeflow/internal/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Control the pomodoro timer over HTTP",
	Long: `Start an HTTP server that hosts the pomodoro timer.

  POST /api/start   {"rounds": 4}
  POST /api/stop
  GET  /api/status
  GET  /api/sessions?limit=20
  GET  /health`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if closed, err := a.db.CloseAbandonedSessions(ctx, time.Now()); err == nil && closed > 0 {
		log.Printf("closed %d abandoned pomodoro sessions", closed)
	}

	h, err := httpapi.New(a.db, a.settings.TimerConfig(), httpapi.Options{})
	if err != nil {
		return err
	}
	addr := serveAddr
	if addr == "" {
		addr = a.settings.HTTPAddr
	}
	return serve(ctx, h, addr)
}

// serve runs the timer loop and the HTTP server until ctx is done.
func serve(ctx context.Context, h *httpapi.Handler, addr string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		if err := h.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("timer loop error: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Printf("TimeFlow timer listening on http://%s\n", addr)
	log.Printf("http api listening on %s", addr)
	err := srv.ListenAndServe()
	cancel()
	<-runnerDone
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
