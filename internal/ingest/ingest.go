package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"voxify/internal/config"
	"voxify/internal/logging"
	"voxify/internal/queue"
	"voxify/internal/services"
)

// Service enqueues audio files for transcription. Unsuitable files are
// reported as skips rather than failing the whole batch.
type Service struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger
}

// SkippedFile records a file that was not enqueued and why.
type SkippedFile struct {
	Path   string
	Reason string
}

// Result summarizes one add operation.
type Result struct {
	Added   []*queue.Item
	Skipped []SkippedFile
}

// NewService constructs an ingest service.
func NewService(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Service {
	svcLogger := logger
	if svcLogger != nil {
		svcLogger = svcLogger.With(logging.String(logging.FieldComponent, "ingest"))
	}
	return &Service{cfg: cfg, store: store, logger: svcLogger}
}

// AddFiles enqueues the given audio files. Files that are missing, too
// large, of an unsupported type, or already queued are skipped.
func (s *Service) AddFiles(ctx context.Context, paths ...string) (*Result, error) {
	result := &Result{}
	for _, path := range paths {
		if err := s.addOne(ctx, path, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// AddFolder enqueues every supported audio file directly inside dir.
// Subdirectories are not descended into.
func (s *Service) AddFolder(ctx context.Context, dir string) (*Result, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "ingest", "resolve folder", fmt.Sprintf("Invalid folder path %q", dir), err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "ingest", "stat folder", fmt.Sprintf("Folder %s does not exist", abs), err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrValidation, "ingest", "stat folder", fmt.Sprintf("%s is not a directory", abs), nil)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "ingest", "read folder", fmt.Sprintf("Failed to read folder %s", abs), err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !s.supportedExtension(entry.Name()) {
			continue
		}
		candidates = append(candidates, filepath.Join(abs, entry.Name()))
	}
	sort.Strings(candidates)

	result := &Result{}
	for _, path := range candidates {
		if err := s.addOne(ctx, path, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *Service) addOne(ctx context.Context, path string, result *Result) error {
	logger := logging.WithContext(ctx, s.logger)

	abs, err := filepath.Abs(path)
	if err != nil {
		result.skip(logger, path, fmt.Sprintf("invalid path: %v", err))
		return nil
	}

	info, err := os.Stat(abs)
	if err != nil {
		result.skip(logger, abs, "file not found")
		return nil
	}
	if info.IsDir() {
		result.skip(logger, abs, "is a directory")
		return nil
	}
	if !s.supportedExtension(abs) {
		result.skip(logger, abs, fmt.Sprintf("unsupported extension %q", strings.ToLower(filepath.Ext(abs))))
		return nil
	}
	if maxBytes := s.cfg.Ingest.MaxFileSizeMB * 1024 * 1024; info.Size() > maxBytes {
		result.skip(logger, abs, fmt.Sprintf("exceeds %dMB size limit", s.cfg.Ingest.MaxFileSizeMB))
		return nil
	}

	existing, err := s.store.FindBySourcePath(ctx, abs)
	if err != nil {
		return services.Wrap(services.ErrTransient, "ingest", "check duplicates", "Failed to query the queue", err)
	}
	if existing != nil {
		result.skip(logger, abs, fmt.Sprintf("already queued as item #%d (%s)", existing.ID, existing.Status))
		return nil
	}

	item, err := s.store.NewFile(ctx, abs)
	if err != nil {
		return services.Wrap(services.ErrTransient, "ingest", "enqueue file", fmt.Sprintf("Failed to enqueue %s", abs), err)
	}
	result.Added = append(result.Added, item)
	logger.Info("audio file queued",
		logging.Int64(logging.FieldItemID, item.ID),
		logging.String("source", abs),
		logging.String("title", item.Title),
	)
	return nil
}

func (s *Service) supportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range s.cfg.Ingest.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (r *Result) skip(logger *slog.Logger, path, reason string) {
	r.Skipped = append(r.Skipped, SkippedFile{Path: path, Reason: reason})
	logger.Warn("skipping file",
		logging.String("source", path),
		logging.String("reason", reason),
	)
}
