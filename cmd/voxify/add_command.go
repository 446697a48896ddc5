package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"voxify/internal/config"
	"voxify/internal/ingest"
	"voxify/internal/logging"
	"voxify/internal/queue"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>...",
		Short: "Queue audio files or folders of audio files for transcription",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				svc := ingest.NewService(cfg, store, logging.NewNop())
				out := cmd.OutOrStdout()

				total := &ingest.Result{}
				for _, arg := range args {
					info, err := os.Stat(arg)
					var result *ingest.Result
					if err == nil && info.IsDir() {
						result, err = svc.AddFolder(cmd.Context(), arg)
					} else {
						result, err = svc.AddFiles(cmd.Context(), arg)
					}
					if err != nil {
						return err
					}
					total.Added = append(total.Added, result.Added...)
					total.Skipped = append(total.Skipped, result.Skipped...)
				}

				for _, item := range total.Added {
					fmt.Fprintf(out, "Queued %s as item #%d\n", filepath.Base(item.SourcePath), item.ID)
				}
				for _, skip := range total.Skipped {
					fmt.Fprintf(out, "Skipped %s: %s\n", skip.Path, skip.Reason)
				}
				if len(total.Added) == 0 && len(total.Skipped) == 0 {
					fmt.Fprintln(out, "No audio files found")
				}
				return nil
			})
		},
	}
}
