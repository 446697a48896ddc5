package transcribing_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxify/internal/logging"
	"voxify/internal/services"
	"voxify/internal/services/whisper"
	"voxify/internal/testsupport"
	"voxify/internal/transcribing"
)

func outputDirFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--output_dir" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func TestTranscriberExecuteStoresTranscript(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	audioPath := filepath.Join(testsupport.BaseDir(cfg), "visit.mp3")
	testsupport.WriteFile(t, audioPath, 2048)
	item := testsupport.NewFile(t, store, audioPath)

	svc := whisper.NewService(whisper.Config{}, "")
	svc.WithCommandRunner(func(_ context.Context, _ string, args ...string) error {
		outDir := outputDirFromArgs(args)
		if outDir == "" {
			t.Fatal("runner did not receive --output_dir")
		}
		payload := `{"text": "um the patient improved", "segments": []}`
		return os.WriteFile(filepath.Join(outDir, "visit.json"), []byte(payload), 0o644)
	})

	handler := transcribing.NewTranscriberWithService(cfg, store, logging.NewNop(), svc)
	ctx := context.Background()
	if err := handler.Prepare(ctx, item); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if err := handler.Execute(ctx, item); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if item.TranscriptText != "um the patient improved" {
		t.Fatalf("transcript = %q", item.TranscriptText)
	}

	// Scratch directory is removed after a successful run.
	scratch := filepath.Join(cfg.Paths.LogDir, "whisper")
	entries, err := os.ReadDir(scratch)
	if err == nil && len(entries) != 0 {
		t.Fatalf("scratch dir not cleaned: %v", entries)
	}
}

func TestTranscriberPrepareRejectsMissingSource(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	item := testsupport.NewFile(t, store, filepath.Join(testsupport.BaseDir(cfg), "absent.mp3"))

	handler := transcribing.NewTranscriberWithService(cfg, store, logging.NewNop(), whisper.NewService(whisper.Config{}, ""))
	err := handler.Prepare(context.Background(), item)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTranscriberPrepareRejectsOversizedSource(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMaxFileSizeMB(1))
	store := testsupport.MustOpenStore(t, cfg)

	audioPath := filepath.Join(testsupport.BaseDir(cfg), "huge.wav")
	testsupport.WriteFile(t, audioPath, 2*1024*1024)
	item := testsupport.NewFile(t, store, audioPath)

	handler := transcribing.NewTranscriberWithService(cfg, store, logging.NewNop(), whisper.NewService(whisper.Config{}, ""))
	err := handler.Prepare(context.Background(), item)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "1MB") {
		t.Fatalf("error should name the limit, got %q", err.Error())
	}
}

func TestTranscriberExecuteWrapsToolFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	audioPath := filepath.Join(testsupport.BaseDir(cfg), "visit.mp3")
	testsupport.WriteFile(t, audioPath, 128)
	item := testsupport.NewFile(t, store, audioPath)

	svc := whisper.NewService(whisper.Config{}, "")
	svc.WithCommandRunner(func(context.Context, string, ...string) error {
		return errors.New("exit status 1")
	})

	handler := transcribing.NewTranscriberWithService(cfg, store, logging.NewNop(), svc)
	err := handler.Execute(context.Background(), item)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}

func TestTranscriberHealthCheck(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries("uvx"))
	store := testsupport.MustOpenStore(t, cfg)

	handler := transcribing.NewTranscriber(cfg, store, logging.NewNop())
	health := handler.HealthCheck(context.Background())
	if !health.Ready {
		t.Fatalf("expected healthy transcriber, got %+v", health)
	}
}
