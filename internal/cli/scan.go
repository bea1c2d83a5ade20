package cli

import (
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/files"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/marker"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the project for instruction markers and marker regions",
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	discovery, err := files.NewDiscovery(rootDir, cfg)
	if err != nil {
		return err
	}
	defer discovery.Close()

	paths, err := discovery.Files()
	if err != nil {
		return err
	}

	scanner := marker.NewScannerWithTokens(
		cfg.Markers.Open, cfg.Markers.Close, cfg.Markers.Instruction)

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("scanning"),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionClearOnFinish(),
	)

	var instructionFiles, markerFiles []string
	for _, path := range paths {
		content, err := discovery.ReadFile(path)
		if err == nil {
			lines := marker.SplitLines(content)
			if strings.Contains(content, cfg.Markers.Instruction) {
				instructionFiles = append(instructionFiles, path)
			}
			if scanner.UsesMarkers(lines) {
				markerFiles = append(markerFiles, path)
			}
		}
		bar.Add(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scanned %d files\n", len(paths))
	fmt.Fprintf(out, "instruction marker (%s): %d file(s)\n", cfg.Markers.Instruction, len(instructionFiles))
	for _, p := range instructionFiles {
		fmt.Fprintf(out, "  %s\n", p)
	}
	fmt.Fprintf(out, "marker regions (%s ... %s): %d file(s)\n", cfg.Markers.Open, cfg.Markers.Close, len(markerFiles))
	for _, p := range markerFiles {
		fmt.Fprintf(out, "  %s\n", p)
	}
	return nil
}
