package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the prompt whenever a source file changes",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w, err := watcher.New(rootDir, watchedExtensions(cfg.Paths.Include))
	if err != nil {
		return err
	}
	defer w.Stop()

	regenerate := func(changed []string) {
		if verbose {
			log.Printf("change detected in %d file(s), regenerating", len(changed))
		}
		result, err := generatePrompt(rootDir, cfg)
		if err != nil {
			log.Printf("regeneration failed: %v", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Prompt)
	}

	if err := w.Start(ctx, regenerate); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (ctrl-c to stop)\n", rootDir)
	<-ctx.Done()
	return nil
}

// watchedExtensions derives the extension set to monitor from the include
// glob patterns (e.g. "**/*.swift" -> ".swift").
func watchedExtensions(patterns []string) []string {
	var exts []string
	seen := map[string]bool{}
	for _, p := range patterns {
		ext := filepath.Ext(p)
		if ext == "" || strings.ContainsAny(ext, "*?[") || seen[ext] {
			continue
		}
		seen[ext] = true
		exts = append(exts, ext)
	}
	return exts
}
