package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/config"
)

var (
	rootDir  string
	verbose  bool
	forceAll bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "promptgen",
	Short: "Promptgen - turn a TODO marker into a minimal, context-preserving prompt",
	Long: `Promptgen locates the instruction marker ("// TODO: -") in a project,
extracts the smallest enclosing function/method/block around it, restricts
files to their "// v" ... "// ^" marker regions, and assembles a prompt from
the result.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "project root directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&forceAll, "force-markers", false, "treat every file as marker-using")

	// Bind flags to viper
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// loadConfig loads the project configuration and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader(rootDir).Load()
	if err != nil {
		return nil, err
	}
	if forceAll {
		cfg.Markers.ForceAll = true
	}
	return cfg, nil
}
