package main

import (
	"log"
	"os"

	mcpAdapter "github.com/aretw0/motif/internal/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the execution host as an MCP server on Stdio.
This allows AI agents (like Claude Desktop) to drive the timeline as tools: load frames, create groups, scrub and play.`,
	Run: func(cmd *cobra.Command, args []string) {
		b, err := setup(cmd)
		if err != nil {
			log.Fatalf("Error initializing motif: %v", err)
		}
		defer b.Close()

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)

		srv := mcpAdapter.NewServer(b.engine.Host())
		b.logger.Info("starting MCP server (stdio)")
		if err := srv.ServeStdio(); err != nil {
			b.logger.Error("MCP server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
