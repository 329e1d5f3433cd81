package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clinical-trials-mcp/internal/adapters/driven/metrics"
	"github.com/custodia-labs/clinical-trials-mcp/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Expose the search-clinical-trials and get-trial-details tools, plus the
clinical-trials://trials/{trialId} resource, to MCP clients.

Without --port the server speaks JSON-RPC over stdin/stdout, which is what
desktop assistants launch. With --port it listens for streamable HTTP on /mcp
and also answers /healthz and /metrics.

Examples:
  clinical-trials mcp serve
  clinical-trials mcp serve --port 8080

Desktop client entry:
  {
    "mcpServers": {
      "clinical-trials": {
        "command": "/usr/local/bin/clinical-trials",
        "args": ["mcp", "serve"]
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

	ports := &mcp.Ports{}
	if port > 0 {
		recorder := metrics.NewRecorder()
		if err := ensureServices(recorder); err != nil {
			return err
		}
		ports.Metrics = recorder.Handler()
	} else if err := ensureServices(nil); err != nil {
		return err
	}
	ports.Trials = trialService

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s/mcp\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
