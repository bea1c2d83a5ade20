package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve marker extraction as MCP tools on stdio",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(rootDir, cfg)
	if err != nil {
		return err
	}
	defer server.Close()

	return server.Serve(context.Background())
}
