package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"voxify/internal/documents"
	"voxify/internal/logging"
	"voxify/internal/notifications"
	"voxify/internal/training"
	"voxify/internal/vocabulary"
)

func newTrainCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "train <path>...",
		Short: "Build the terminology vocabulary from reference documents",
		Long: `Train reads reference documents (.txt, .md, .docx), derives the domain
vocabulary used to clean transcripts, and replaces the stored vocabulary.
Directory arguments are scanned for supported documents without descending
into subdirectories.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			paths, err := collectDocuments(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no supported reference documents found (supported: %v)", documents.SupportedExtensions())
			}

			trainer := training.NewTrainer(logging.NewNop())
			vocab, report, err := trainer.Train(cmd.Context(), paths)
			if err != nil {
				return err
			}
			if err := vocabulary.Save(vocab, cfg.Paths.VocabularyPath); err != nil {
				return err
			}

			notifier := notifications.NewService(cfg)
			if err := notifier.NotifyTrainingCompleted(cmd.Context(), report.Terms, report.Phrases); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: training notification failed: %v\n", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %d documents (%d used, %d skipped)\n",
				report.DocumentsScanned, report.DocumentsUsed, report.DocumentsSkipped)
			fmt.Fprintf(out, "Learned %d terms and %d phrases\n", report.Terms, report.Phrases)
			fmt.Fprintf(out, "Vocabulary saved to %s\n", cfg.Paths.VocabularyPath)
			return nil
		},
	}
}

// collectDocuments expands directory arguments into their supported documents.
// Explicit file arguments are kept as-is so extraction can report the failure.
func collectDocuments(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve path %q: %w", arg, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", abs, err)
		}
		if !info.IsDir() {
			paths = append(paths, abs)
			continue
		}

		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", abs, err)
		}
		var found []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if documents.IsSupported(entry.Name()) {
				found = append(found, filepath.Join(abs, entry.Name()))
			}
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}
