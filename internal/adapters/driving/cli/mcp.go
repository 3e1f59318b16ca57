package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitlab-xsearch/internal/adapters/driven/progress"
	"github.com/custodia-labs/gitlab-xsearch/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can run
cross-project code searches through the search_projects tool.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  gitlab-xsearch mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  gitlab-xsearch mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "gitlab-xsearch": {
        "command": "/path/to/gitlab-xsearch",
        "args": ["mcp", "serve"],
        "env": {"GITLAB_TOKEN": "glpat-..."}
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	store, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg, err := resolveConfig(cmd, store)
	if err != nil {
		return err
	}

	// stdout carries JSON-RPC in stdio mode, so no progress is drawn.
	svc, err := newSearchService(cmd.Context(), cfg, progress.Nop{})
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:      svc,
		MaxProjects: cfg.MaxProjects,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.ListenAndServe(cmd.Context(), addr)
	}

	return server.ServeStdio(cmd.Context())
}
