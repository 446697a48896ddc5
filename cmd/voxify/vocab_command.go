package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"voxify/internal/vocabulary"
)

func newVocabCommand(ctx *commandContext) *cobra.Command {
	var showTerms bool
	var showPhrases bool

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Show the trained vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			vocab, err := vocabulary.Load(cfg.Paths.VocabularyPath)
			if err != nil {
				if errors.Is(err, vocabulary.ErrNotFound) {
					return fmt.Errorf("no trained vocabulary at %s; run `voxify train` first", cfg.Paths.VocabularyPath)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vocabulary: %d terms, %d phrases (%s)\n",
				vocab.TermCount(), vocab.PhraseCount(), cfg.Paths.VocabularyPath)

			if showTerms {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Terms:")
				for _, term := range vocab.Terms() {
					fmt.Fprintf(out, "  %s\n", term)
				}
			}
			if showPhrases {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Phrases:")
				for _, phrase := range vocab.Phrases() {
					fmt.Fprintf(out, "  %s\n", phrase)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTerms, "terms", false, "List every learned term")
	cmd.Flags().BoolVar(&showPhrases, "phrases", false, "List every learned phrase")
	return cmd
}
