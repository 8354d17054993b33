package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/motif/internal/playback"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Apply every animation group at a point in time",
	Long:  `Scrubs the timeline: every stored group is sampled at the given time and written to the scene, without starting playback.`,
	Run: func(cmd *cobra.Command, args []string) {
		at, _ := cmd.Flags().GetFloat64("at")

		b, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error initializing motif: %v\n", err)
			os.Exit(1)
		}
		defer b.Close()

		if err := b.engine.Preview(cmd.Context(), at); err != nil {
			fmt.Printf("Error previewing: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Previewed timeline at %gs\n", at)
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run playback in real time",
	Long:  `Sweeps the playhead in real time, applying every stored group on each frame. Runs until the duration elapses or an interrupt arrives.`,
	Run: func(cmd *cobra.Command, args []string) {
		duration, _ := cmd.Flags().GetFloat64("duration")

		b, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error initializing motif: %v\n", err)
			os.Exit(1)
		}
		defer b.Close()

		if err := b.engine.Play(cmd.Context(), duration); err != nil {
			fmt.Printf("Error starting playback: %v\n", err)
			os.Exit(1)
		}

		scheduler := b.engine.Scheduler()
		if scheduler.State() == playback.StateIdle {
			// Nothing to play; the notification already went out.
			return
		}
		fmt.Println("Playing... (Ctrl+C to stop)")

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-interrupt:
				if err := b.engine.Stop(cmd.Context()); err != nil {
					fmt.Printf("Error stopping playback: %v\n", err)
				}
				fmt.Printf("\nStopped at %.2fs\n", scheduler.CurrentTime())
				return
			case <-ticker.C:
				if scheduler.State() == playback.StateIdle {
					fmt.Println("Playback finished")
					return
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(playCmd)

	previewCmd.Flags().Float64("at", 0, "Timeline position in seconds")
	playCmd.Flags().Float64P("duration", "d", 0, "Playback duration in seconds (0 plays to the end of the longest group)")
}
