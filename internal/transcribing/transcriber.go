package transcribing

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"voxify/internal/config"
	"voxify/internal/logging"
	"voxify/internal/queue"
	"voxify/internal/services"
	"voxify/internal/services/whisper"
	"voxify/internal/stage"
)

// Transcriber converts queued audio files into raw transcript text.
type Transcriber struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
	svc    *whisper.Service
}

// NewTranscriber constructs the transcribing stage handler using default dependencies.
func NewTranscriber(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Transcriber {
	svc := whisper.NewService(whisper.Config{
		Model:    cfg.Whisper.Model,
		Language: cfg.Whisper.Language,
	}, cfg.UVXBinary())
	return NewTranscriberWithService(cfg, store, logger, svc)
}

// NewTranscriberWithService allows injecting the transcription service (used in tests).
func NewTranscriberWithService(cfg *config.Config, store *queue.Store, logger *slog.Logger, svc *whisper.Service) *Transcriber {
	stageLogger := logger
	if stageLogger != nil {
		stageLogger = stageLogger.With(logging.String(logging.FieldComponent, "transcriber"))
	}
	return &Transcriber{cfg: cfg, store: store, logger: stageLogger, svc: svc}
}

func (t *Transcriber) Prepare(ctx context.Context, item *queue.Item) error {
	logger := logging.WithContext(ctx, t.logger)
	if item.ProgressStage == "" {
		item.ProgressStage = "Transcribing"
	}
	item.ProgressMessage = "Preparing transcription"
	item.ProgressPercent = 0
	item.ErrorMessage = ""

	info, err := os.Stat(item.SourcePath)
	if err != nil {
		return services.Wrap(
			services.ErrValidation, "transcribing", "validate source",
			fmt.Sprintf("Audio file missing or unreadable: %s", item.SourcePath), err)
	}
	if maxBytes := t.cfg.Ingest.MaxFileSizeMB * 1024 * 1024; maxBytes > 0 && info.Size() > maxBytes {
		return services.Wrap(
			services.ErrValidation, "transcribing", "validate source",
			fmt.Sprintf("Audio file exceeds %dMB limit: %s", t.cfg.Ingest.MaxFileSizeMB, item.SourcePath), nil)
	}

	logger.Info("starting transcription preparation",
		logging.String("source_file", strings.TrimSpace(item.SourcePath)),
		logging.Int64("source_bytes", info.Size()),
	)
	return nil
}

func (t *Transcriber) Execute(ctx context.Context, item *queue.Item) error {
	logger := logging.WithContext(ctx, t.logger)

	workDir := filepath.Join(t.cfg.Paths.LogDir, "whisper", fmt.Sprintf("item-%d", item.ID))
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return services.Wrap(services.ErrTransient, "transcribing", "prepare work dir", "Failed to create whisper scratch directory", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			logger.Warn("failed to remove whisper scratch directory", logging.Error(err))
		}
	}()

	runCtx := ctx
	if t.cfg.Whisper.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(t.cfg.Whisper.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	t.updateProgress(ctx, item, "Running whisper", 10)
	logger.Info("invoking whisper",
		logging.String("model", t.svc.Model()),
		logging.String("source_file", item.SourcePath),
	)

	result, err := t.svc.TranscribeFile(runCtx, item.SourcePath, workDir)
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return services.Wrap(services.ErrExternalTool, "transcribing", "run whisper",
				fmt.Sprintf("Transcription timed out after %ds", t.cfg.Whisper.TimeoutSeconds), err)
		}
		return services.Wrap(services.ErrExternalTool, "transcribing", "run whisper", "Whisper transcription failed", err)
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		logger.Warn("whisper produced an empty transcript", logging.String("source_file", item.SourcePath))
	}
	item.TranscriptText = text
	item.SetProgressComplete("Transcribing", "Transcription completed")

	logger.Info("transcription completed",
		logging.Int("transcript_chars", len(text)),
	)
	return nil
}

// HealthCheck verifies the uvx launcher is available.
func (t *Transcriber) HealthCheck(ctx context.Context) stage.Health {
	const name = "transcriber"
	if t.cfg == nil {
		return stage.Unhealthy(name, "configuration unavailable")
	}
	if _, err := exec.LookPath(t.cfg.UVXBinary()); err != nil {
		return stage.Unhealthy(name, fmt.Sprintf("%s not found on PATH", t.cfg.UVXBinary()))
	}
	return stage.Healthy(name)
}

func (t *Transcriber) updateProgress(ctx context.Context, item *queue.Item, message string, percent float64) {
	logger := logging.WithContext(ctx, t.logger)
	copied := *item
	copied.ProgressMessage = message
	copied.ProgressPercent = percent
	if err := t.store.Update(ctx, &copied); err != nil {
		logger.Warn("failed to persist transcriber progress", logging.Error(err))
		return
	}
	*item = copied
}
