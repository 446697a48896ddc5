package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"voxify/internal/cleaning"
	"voxify/internal/export"
	"voxify/internal/logging"
	"voxify/internal/preflight"
	"voxify/internal/queue"
	"voxify/internal/transcribing"
	"voxify/internal/workflow"
)

const queueWatchInterval = 500 * time.Millisecond

func newRunCommand(ctx *commandContext) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process queued audio files through transcription, cleaning, and export",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			// One processing loop per queue database.
			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "voxify.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another voxify run is already active")
			}
			defer func() { _ = lock.Unlock() }()

			results := preflight.RunAll(cmd.Context(), cfg)
			printPreflight(out, results)
			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d preflight check(s) failed", len(failed))
			}

			logger, err := logging.New(logging.Options{
				Level:       cfg.Logging.Level,
				Format:      cfg.Logging.Format,
				OutputPaths: []string{filepath.Join(cfg.Paths.LogDir, "voxify.log")},
			})
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := queue.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if reset, err := store.ResetStuckProcessing(runCtx); err != nil {
				return err
			} else if reset > 0 {
				fmt.Fprintf(out, "Reset %d interrupted item(s) for retry\n", reset)
			}

			health, err := store.Health(runCtx)
			if err != nil {
				return err
			}
			if health.Pending+health.Processing == 0 && !watch {
				fmt.Fprintln(out, "Queue is empty; nothing to process")
				return nil
			}

			manager := workflow.NewManager(cfg, store, logger)
			manager.ConfigureStages(workflow.StageSet{
				Transcriber: transcribing.NewTranscriber(cfg, store, logger),
				Cleaner:     cleaning.NewStage(cfg, store, logger),
				Exporter:    export.NewExporter(cfg, store, logger),
			})

			if err := manager.Start(runCtx); err != nil {
				return err
			}
			defer manager.Stop()

			interrupted := watchQueue(runCtx, store, watch)

			final, err := store.Health(context.Background())
			if err != nil {
				return err
			}
			if interrupted {
				fmt.Fprintln(out, "Interrupted; in-flight items will resume on the next run")
			}
			fmt.Fprintf(out, "Queue: %d completed, %d failed, %d pending\n",
				final.Completed, final.Failed, final.Pending+final.Processing)
			if final.Failed > 0 {
				fmt.Fprintln(out, "Inspect failures with `voxify queue list --status failed`")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and pick up newly queued items")
	return cmd
}

// watchQueue blocks until the queue drains (or indefinitely with watch) and
// reports whether the run was interrupted. A progress bar is shown on a tty.
func watchQueue(ctx context.Context, store *queue.Store, watch bool) bool {
	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stdout.Fd()) {
		bar = progressbar.NewOptions(0,
			progressbar.OptionSetDescription("Processing queue"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Clear() }()
	}

	ticker := time.NewTicker(queueWatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return true
		case <-ticker.C:
		}

		health, err := store.Health(ctx)
		if err != nil {
			continue
		}
		if bar != nil {
			bar.ChangeMax(health.Total)
			_ = bar.Set(health.Completed + health.Failed)
		}
		if !watch && health.Pending+health.Processing == 0 {
			return false
		}
	}
}

func printPreflight(out io.Writer, results []preflight.Result) {
	colorize := shouldColorize(out)
	for _, result := range results {
		kind := statusOK
		if !result.Passed {
			kind = statusError
		}
		fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
	}
}
