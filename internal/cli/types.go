package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/engine"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/files"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the candidate type names referenced by the marked file",
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	discovery, err := files.NewDiscovery(rootDir, cfg)
	if err != nil {
		return err
	}
	defer discovery.Close()

	instructionFiles, err := discovery.FindInstructionFiles()
	if err != nil {
		return err
	}
	if len(instructionFiles) == 0 {
		return fmt.Errorf("no file contains the instruction marker %q", cfg.Markers.Instruction)
	}

	content, err := discovery.ReadFile(instructionFiles[0])
	if err != nil {
		return err
	}

	for _, token := range engine.New(cfg).ExtractTypes(content) {
		fmt.Fprintln(cmd.OutOrStdout(), token)
	}
	return nil
}
