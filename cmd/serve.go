package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"temline/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver, charts and plots over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stderr, "temline: ", log.LstdFlags)
		srv := server.NewServer(serveAddr, logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			logger.Printf("starting server on %s", serveAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- err
			}
			close(errc)
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}
		logger.Println("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Println("server stopped")
		return nil
	},
}

func init() {
	addr := os.Getenv("TEMLINE_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", addr, "listen address (env TEMLINE_HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
