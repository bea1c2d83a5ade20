package cli

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/config"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/engine"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/files"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/gitdiff"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/prompt"
)

var (
	generateDiffBranch string
	generateNoCopy     bool
	generateTypesFile  bool
	generateReferences bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble a prompt from the file holding the instruction marker",
	Long: `Generate finds the file containing the instruction marker, extracts the
smallest enclosing block around it, filters every marker-using file down to
its visible regions, pulls in files defining the referenced types, and
assembles the result into a single prompt.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateDiffBranch, "diff-branch", "", "include a diff of the marked file against this branch")
	generateCmd.Flags().BoolVar(&generateNoCopy, "no-copy", false, "print the prompt without copying it to the clipboard")
	generateCmd.Flags().BoolVar(&generateTypesFile, "types-file", false, "also write the type-token list to a temp file and print its path")
	generateCmd.Flags().BoolVar(&generateReferences, "include-references", false, "also include files that merely reference the candidate types")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateDiffBranch != "" {
		cfg.Diff.Enabled = true
		cfg.Diff.Branch = generateDiffBranch
	}

	result, err := generatePrompt(rootDir, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Prompt)

	if generateTypesFile {
		eng := engine.New(cfg)
		path, err := eng.WriteTypesFile(result.Types)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "types written to %s\n", path)
	}

	if cfg.Output.Clipboard && !generateNoCopy {
		if prompt.CopyToClipboard(result.Prompt) {
			fmt.Fprintln(cmd.ErrOrStderr(), "prompt copied to clipboard")
		} else if verbose {
			log.Printf("no clipboard helper available, skipping copy")
		}
	}
	return nil
}

// generateResult carries the assembled prompt and its supporting data.
type generateResult struct {
	Prompt       string
	MarkedFile   string
	Instruction  string
	Types        []string
	IncludedFile []string
}

// generatePrompt runs the whole pipeline for one project root.
func generatePrompt(root string, cfg *config.Config) (*generateResult, error) {
	discovery, err := files.NewDiscovery(root, cfg)
	if err != nil {
		return nil, err
	}
	defer discovery.Close()

	instructionFiles, err := discovery.FindInstructionFiles()
	if err != nil {
		return nil, err
	}
	if len(instructionFiles) == 0 {
		return nil, fmt.Errorf("no file contains the instruction marker %q", cfg.Markers.Instruction)
	}
	markedFile := instructionFiles[0]
	if len(instructionFiles) > 1 {
		log.Printf("multiple files contain the instruction marker; using %s", markedFile)
	}

	markedContent, err := discovery.ReadFile(markedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", markedFile, err)
	}

	eng := engine.New(cfg)
	instruction, _ := eng.InstructionText(markedContent)
	types := eng.ExtractTypes(markedContent)

	// The batch: the marked file, every marker-using file, and files that
	// define the types the marked file references.
	batch := []string{markedFile}
	seen := map[string]bool{markedFile: true}
	add := func(paths []string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				batch = append(batch, p)
			}
		}
	}
	markerFiles, err := discovery.FindMarkerFiles()
	if err != nil {
		return nil, err
	}
	add(markerFiles)
	definingFiles, err := discovery.FindDefiningFiles(types)
	if err != nil {
		return nil, err
	}
	add(definingFiles)
	if generateReferences {
		referencingFiles, err := discovery.FindReferencingFiles(types)
		if err != nil {
			return nil, err
		}
		add(referencingFiles)
	}

	expected := filepath.Base(markedFile)
	sections := make([]prompt.Section, 0, len(batch))
	for _, path := range batch {
		content, err := discovery.ReadFile(path)
		if err != nil {
			// Unreadable batch members degrade to raw omission; the marked
			// file was already read successfully above.
			log.Printf("skipping unreadable file %s: %v", path, err)
			continue
		}
		sections = append(sections, prompt.Section{
			Path:    path,
			Content: eng.ProcessFile(path, content, expected),
		})
	}

	var diff, diffBranch string
	if cfg.Diff.Enabled {
		ops := gitdiff.NewOperations()
		diffBranch = cfg.Diff.Branch
		if diffBranch == "" {
			diffBranch = ops.FindAncestorBranch(root, ops.CurrentBranch(root))
		}
		if diffBranch != "" && ops.BranchExists(root, diffBranch) {
			diff, err = ops.DiffAgainstBranch(root, diffBranch, markedFile)
			if err != nil {
				log.Printf("diff against %s failed, omitting diff section: %v", diffBranch, err)
				diff = ""
			}
		}
	}

	assembled := prompt.NewAssembler().Assemble(instruction, sections, diff, diffBranch)
	return &generateResult{
		Prompt:       assembled,
		MarkedFile:   markedFile,
		Instruction:  instruction,
		Types:        types,
		IncludedFile: batch,
	}, nil
}
