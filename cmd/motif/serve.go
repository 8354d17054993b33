package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/motif"
	httpAdapter "github.com/aretw0/motif/internal/adapters/http"
	"github.com/aretw0/motif/internal/observability"
	"github.com/aretw0/motif/internal/presentation/timeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editing-surface HTTP bridge",
	Long:  `Starts the execution host behind an HTTP bridge: commands arrive on POST /message, notifications stream back over SSE on GET /events.`,
	Run: func(cmd *cobra.Command, args []string) {
		hub := httpAdapter.NewHub()
		metrics := observability.New(prometheus.DefaultRegisterer)

		b, err := setup(cmd,
			motif.WithNotifier(hub),
			motif.WithMetrics(metrics),
		)
		if err != nil {
			fmt.Printf("Error initializing motif: %v\n", err)
			os.Exit(1)
		}
		defer b.Close()

		timeline.PrintBanner()

		handler := httpAdapter.NewHandler(b.engine.Host(), hub, httpAdapter.WithLogger(b.logger))

		srv := &http.Server{
			Addr:    b.cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Motif Server on %s\n", srv.Addr)
			if b.cfg.Scene != "" {
				fmt.Printf("Scene loaded from: %s\n", b.cfg.Scene)
			}
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Playback has no outside observers after the surface is gone.
			if err := b.engine.Stop(context.Background()); err != nil {
				fmt.Printf("Error stopping playback: %v\n", err)
			}

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Motif Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
