package main

import (
	"fmt"
	"os"

	"github.com/aretw0/motif/internal/presentation/timeline"
	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Inspect stored animation groups",
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored animation groups",
	Run: func(cmd *cobra.Command, args []string) {
		b, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error initializing motif: %v\n", err)
			os.Exit(1)
		}
		defer b.Close()

		groups, err := b.engine.Groups().ListAll(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing groups: %v\n", err)
			os.Exit(1)
		}

		render := timeline.NewRenderer()
		out, err := render(timeline.GroupsMarkdown(groups))
		if err != nil {
			fmt.Printf("Error rendering output: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

var groupsShowCmd = &cobra.Command{
	Use:   "show <group-id>",
	Short: "Show one animation group with its keyframe timeline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		b, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error initializing motif: %v\n", err)
			os.Exit(1)
		}
		defer b.Close()

		group, err := b.engine.Groups().Get(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error loading group: %v\n", err)
			os.Exit(1)
		}

		render := timeline.NewRenderer()
		out, err := render(timeline.GroupMarkdown(group))
		if err != nil {
			fmt.Printf("Error rendering output: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Show the scene's frames and layer trees",
	Run: func(cmd *cobra.Command, args []string) {
		b, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error initializing motif: %v\n", err)
			os.Exit(1)
		}
		defer b.Close()

		frames, err := b.engine.Frames(cmd.Context())
		if err != nil {
			fmt.Printf("Error loading frames: %v\n", err)
			os.Exit(1)
		}

		render := timeline.NewRenderer()
		out, err := render(timeline.FramesMarkdown(frames))
		if err != nil {
			fmt.Printf("Error rendering output: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(framesCmd)
	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsShowCmd)
}
