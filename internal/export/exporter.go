package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voxify/internal/config"
	"voxify/internal/logging"
	"voxify/internal/queue"
	"voxify/internal/services"
	"voxify/internal/stage"
)

const (
	transcriptHeader  = "VOXIFY TRANSCRIPTION"
	transcriptTrailer = "Medical AI Transcription by Voxify"
	timestampLayout   = "2006-01-02 15:04:05"
)

// Exporter writes cleaned transcripts into the output directory.
type Exporter struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewExporter constructs the export stage handler.
func NewExporter(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Exporter {
	stageLogger := logger
	if stageLogger != nil {
		stageLogger = stageLogger.With(logging.String(logging.FieldComponent, "exporter"))
	}
	return &Exporter{cfg: cfg, store: store, logger: stageLogger, now: time.Now}
}

func (e *Exporter) Prepare(ctx context.Context, item *queue.Item) error {
	if item.ProgressStage == "" {
		item.ProgressStage = "Exporting"
	}
	item.ProgressMessage = "Preparing transcript export"
	item.ProgressPercent = 0
	item.ErrorMessage = ""

	if strings.TrimSpace(item.CleanedText) == "" && strings.TrimSpace(item.TranscriptText) == "" {
		return services.Wrap(
			services.ErrValidation, "exporting", "validate transcript",
			"No transcript text available for export; rerun transcription", nil)
	}
	return nil
}

func (e *Exporter) Execute(ctx context.Context, item *queue.Item) error {
	logger := logging.WithContext(ctx, e.logger)

	outputDir := strings.TrimSpace(e.cfg.Paths.OutputDir)
	if outputDir == "" {
		return services.Wrap(
			services.ErrConfiguration, "exporting", "resolve output dir",
			"Output directory not configured; set paths.output_dir in config.toml", nil)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "exporting", "ensure output dir", "Failed to create output directory", err)
	}

	body := item.CleanedText
	if strings.TrimSpace(body) == "" {
		body = item.TranscriptText
	}

	target, err := e.targetPath(outputDir, item.SourcePath)
	if err != nil {
		return err
	}
	e.updateProgress(ctx, item, fmt.Sprintf("Writing %s", filepath.Base(target)), 50)

	content := e.renderTranscript(item.SourcePath, body)
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return services.Wrap(services.ErrTransient, "exporting", "write transcript", "Failed to write transcript file", err)
	}

	item.FinalFile = target
	item.SetProgressComplete("Exporting", fmt.Sprintf("Exported %s", filepath.Base(target)))
	logger.Info("transcript exported",
		logging.String("final_file", target),
		logging.Int("transcript_chars", len(body)),
	)
	return nil
}

// targetPath derives the output file name from the audio file name. Without
// overwrite_existing an occupied name gets a numeric suffix instead.
func (e *Exporter) targetPath(outputDir, sourcePath string) (string, error) {
	base := filepath.Base(sourcePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.TrimSpace(name) == "" {
		name = "transcript"
	}

	candidate := filepath.Join(outputDir, name+".txt")
	if e.cfg.Output.OverwriteExisting {
		return candidate, nil
	}

	const maxAttempts = 10000
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			candidate = filepath.Join(outputDir, fmt.Sprintf("%s-%d.txt", name, attempt))
		}
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return candidate, nil
			}
			return "", services.Wrap(services.ErrTransient, "exporting", "allocate filename", "Unable to probe output filename", err)
		}
	}
	return "", services.Wrap(services.ErrTransient, "exporting", "allocate filename",
		fmt.Sprintf("Exhausted output filename slots in %s", outputDir), nil)
}

func (e *Exporter) renderTranscript(sourcePath, body string) string {
	return fmt.Sprintf("%s\nGenerated: %s\nSource: %s\n\n%s\n\n---\n%s\n",
		transcriptHeader,
		e.now().Format(timestampLayout),
		filepath.Base(sourcePath),
		body,
		transcriptTrailer,
	)
}

func (e *Exporter) updateProgress(ctx context.Context, item *queue.Item, message string, percent float64) {
	logger := logging.WithContext(ctx, e.logger)
	copied := *item
	copied.ProgressMessage = message
	copied.ProgressPercent = percent
	if err := e.store.Update(ctx, &copied); err != nil {
		logger.Warn("failed to persist exporter progress", logging.Error(err))
		return
	}
	*item = copied
}

// HealthCheck verifies the output directory is configured and writable.
func (e *Exporter) HealthCheck(ctx context.Context) stage.Health {
	const name = "exporter"
	if e.cfg == nil {
		return stage.Unhealthy(name, "configuration unavailable")
	}
	outputDir := strings.TrimSpace(e.cfg.Paths.OutputDir)
	if outputDir == "" {
		return stage.Unhealthy(name, "output directory not configured")
	}
	return stage.Healthy(name)
}
