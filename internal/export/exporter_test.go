package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"voxify/internal/logging"
	"voxify/internal/services"
	"voxify/internal/testsupport"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestExporterWritesFormattedTranscript(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	item := testsupport.NewFile(t, store, "/recordings/visit.mp3")
	item.TranscriptText = "um the stent held"
	item.CleanedText = "The stent held."

	handler := NewExporter(cfg, store, logging.NewNop())
	handler.now = fixedClock

	ctx := context.Background()
	if err := handler.Prepare(ctx, item); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if err := handler.Execute(ctx, item); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := filepath.Join(cfg.Paths.OutputDir, "visit.txt")
	if item.FinalFile != want {
		t.Fatalf("final file = %q, want %q", item.FinalFile, want)
	}

	data, err := os.ReadFile(item.FinalFile)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	wantContent := "VOXIFY TRANSCRIPTION\n" +
		"Generated: 2024-03-14 09:26:53\n" +
		"Source: visit.mp3\n\n" +
		"The stent held.\n\n" +
		"---\n" +
		"Medical AI Transcription by Voxify\n"
	if string(data) != wantContent {
		t.Fatalf("transcript content = %q, want %q", data, wantContent)
	}
	if item.ProgressPercent != 100 {
		t.Fatalf("progress percent = %v", item.ProgressPercent)
	}
}

func TestExporterFallsBackToRawTranscript(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	item := testsupport.NewFile(t, store, "/recordings/visit.mp3")
	item.TranscriptText = "um the stent held"

	handler := NewExporter(cfg, store, logging.NewNop())
	handler.now = fixedClock
	if err := handler.Execute(context.Background(), item); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(item.FinalFile)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	if got := string(data); !strings.Contains(got, "um the stent held") {
		t.Fatalf("transcript should carry the raw text, got %q", got)
	}
}

func TestExporterSuffixesExistingFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		t.Fatalf("create output dir: %v", err)
	}
	occupied := filepath.Join(cfg.Paths.OutputDir, "visit.txt")
	if err := os.WriteFile(occupied, []byte("earlier export"), 0o644); err != nil {
		t.Fatalf("seed existing file: %v", err)
	}

	item := testsupport.NewFile(t, store, "/recordings/visit.mp3")
	item.CleanedText = "Second visit."

	handler := NewExporter(cfg, store, logging.NewNop())
	handler.now = fixedClock
	if err := handler.Execute(context.Background(), item); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := filepath.Join(cfg.Paths.OutputDir, "visit-1.txt")
	if item.FinalFile != want {
		t.Fatalf("final file = %q, want %q", item.FinalFile, want)
	}
	if data, err := os.ReadFile(occupied); err != nil || string(data) != "earlier export" {
		t.Fatalf("existing export must be untouched, got %q (%v)", data, err)
	}
}

func TestExporterOverwritesWhenConfigured(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Output.OverwriteExisting = true
	store := testsupport.MustOpenStore(t, cfg)

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		t.Fatalf("create output dir: %v", err)
	}
	occupied := filepath.Join(cfg.Paths.OutputDir, "visit.txt")
	if err := os.WriteFile(occupied, []byte("earlier export"), 0o644); err != nil {
		t.Fatalf("seed existing file: %v", err)
	}

	item := testsupport.NewFile(t, store, "/recordings/visit.mp3")
	item.CleanedText = "Second visit."

	handler := NewExporter(cfg, store, logging.NewNop())
	handler.now = fixedClock
	if err := handler.Execute(context.Background(), item); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if item.FinalFile != occupied {
		t.Fatalf("final file = %q, want %q", item.FinalFile, occupied)
	}
	if data, _ := os.ReadFile(occupied); !strings.Contains(string(data), "Second visit.") {
		t.Fatalf("existing export should be replaced, got %q", data)
	}
}

func TestExporterPrepareRequiresTranscript(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	item := testsupport.NewFile(t, store, "/recordings/visit.mp3")

	handler := NewExporter(cfg, store, logging.NewNop())
	err := handler.Prepare(context.Background(), item)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestExporterHealthCheck(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	handler := NewExporter(cfg, store, logging.NewNop())
	if health := handler.HealthCheck(context.Background()); !health.Ready {
		t.Fatalf("expected healthy exporter, got %+v", health)
	}

	cfg.Paths.OutputDir = ""
	if health := handler.HealthCheck(context.Background()); health.Ready {
		t.Fatal("expected unhealthy exporter without output directory")
	}
}
