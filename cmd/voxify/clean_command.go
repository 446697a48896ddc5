package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"voxify/internal/cleaning"
	"voxify/internal/vocabulary"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [file]",
		Short: "Clean transcript text using the trained vocabulary",
		Long: `Clean applies the filler-word filter to transcript text and prints the
result. Text is read from the given file, or from standard input when no
file is provided. Without a trained vocabulary the text passes through
unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read transcript: %w", err)
				}
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			vocab, err := vocabulary.Load(cfg.Paths.VocabularyPath)
			if err != nil {
				if !errors.Is(err, vocabulary.ErrNotFound) {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: no trained vocabulary, text passes through unchanged")
				vocab = vocabulary.Empty()
			}

			fmt.Fprintln(cmd.OutOrStdout(), cleaning.Clean(string(data), vocab))
			return nil
		},
	}
}
