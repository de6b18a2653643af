package cmd

import (
	"github.com/huangsam/logbook/internal/contract"
	"github.com/huangsam/logbook/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Logbook MCP server",
	Long:  `Launch an MCP server that allows AI agents to summarize discipline logs via standard tools.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Skip sharedSetup here: the input file arrives per tool call, not
		// on the command line, and stdio must stay clean for the protocol.
		if err := loadConfigFile(); err != nil {
			return err
		}
		cfg.TopStudents = contract.DefaultTopStudents
		cfg.TopAuthors = contract.DefaultTopAuthors
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}
