package cleaning

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"voxify/internal/config"
	"voxify/internal/logging"
	"voxify/internal/queue"
	"voxify/internal/stage"
	"voxify/internal/vocabulary"
)

// Stage filters raw transcripts against the trained vocabulary.
type Stage struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
}

// NewStage constructs the cleaning stage handler.
func NewStage(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Stage {
	stageLogger := logger
	if stageLogger != nil {
		stageLogger = stageLogger.With(logging.String(logging.FieldComponent, "cleaner"))
	}
	return &Stage{cfg: cfg, store: store, logger: stageLogger}
}

func (s *Stage) Prepare(ctx context.Context, item *queue.Item) error {
	if item.ProgressStage == "" {
		item.ProgressStage = "Cleaning"
	}
	item.ProgressMessage = "Preparing transcript cleanup"
	item.ProgressPercent = 0
	item.ErrorMessage = ""
	return nil
}

func (s *Stage) Execute(ctx context.Context, item *queue.Item) error {
	logger := logging.WithContext(ctx, s.logger)

	vocab := s.loadVocabulary(logger)
	cleaned := Clean(item.TranscriptText, vocab)
	item.CleanedText = cleaned
	item.SetProgressComplete("Cleaning", "Transcript cleaned")

	logger.Info("transcript cleaned",
		logging.Int("terms", vocab.TermCount()),
		logging.Int("phrases", vocab.PhraseCount()),
		logging.Int("raw_chars", len(item.TranscriptText)),
		logging.Int("cleaned_chars", len(cleaned)),
		logging.Bool("passthrough", cleaned == item.TranscriptText),
	)
	return nil
}

// loadVocabulary returns the stored vocabulary, or an empty one when the
// store is missing or unreadable. Cleaning degrades to pass-through rather
// than failing the item.
func (s *Stage) loadVocabulary(logger *slog.Logger) *vocabulary.Vocabulary {
	vocab, err := vocabulary.Load(s.cfg.Paths.VocabularyPath)
	if err != nil {
		if errors.Is(err, vocabulary.ErrNotFound) {
			logger.Warn("no trained vocabulary; transcripts pass through unchanged",
				logging.String("vocabulary_path", s.cfg.Paths.VocabularyPath),
			)
		} else {
			logger.Warn("vocabulary store unreadable; transcripts pass through unchanged",
				logging.Error(err),
				logging.String("vocabulary_path", s.cfg.Paths.VocabularyPath),
			)
		}
		return vocabulary.Empty()
	}
	return vocab
}

// HealthCheck reports readiness. A missing vocabulary is not an error; the
// stage degrades to pass-through.
func (s *Stage) HealthCheck(ctx context.Context) stage.Health {
	const name = "cleaner"
	if s.cfg == nil || strings.TrimSpace(s.cfg.Paths.VocabularyPath) == "" {
		return stage.Unhealthy(name, "vocabulary path not configured")
	}
	return stage.Healthy(name)
}
