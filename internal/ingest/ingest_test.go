package ingest_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"voxify/internal/ingest"
	"voxify/internal/logging"
	"voxify/internal/queue"
	"voxify/internal/services"
	"voxify/internal/testsupport"
)

func TestAddFolderEnqueuesSupportedFiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	dir := filepath.Join(testsupport.BaseDir(cfg), "recordings")
	testsupport.WriteFile(t, filepath.Join(dir, "visit-a.mp3"), 256)
	testsupport.WriteFile(t, filepath.Join(dir, "visit-b.wav"), 256)
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), 64)
	testsupport.WriteFile(t, filepath.Join(dir, "nested", "deep.mp3"), 256)

	svc := ingest.NewService(cfg, store, logging.NewNop())
	result, err := svc.AddFolder(context.Background(), dir)
	if err != nil {
		t.Fatalf("AddFolder failed: %v", err)
	}

	if len(result.Added) != 2 {
		t.Fatalf("added = %d items, want 2: %+v", len(result.Added), result.Added)
	}
	// Folder scans enqueue in name order and never descend.
	if base := filepath.Base(result.Added[0].SourcePath); base != "visit-a.mp3" {
		t.Fatalf("first added = %s", base)
	}
	if base := filepath.Base(result.Added[1].SourcePath); base != "visit-b.wav" {
		t.Fatalf("second added = %s", base)
	}
	for _, item := range result.Added {
		if item.Status != queue.StatusPending {
			t.Fatalf("item %d status = %s, want pending", item.ID, item.Status)
		}
	}
}

func TestAddFolderRejectsMissingDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	svc := ingest.NewService(cfg, store, logging.NewNop())
	_, err := svc.AddFolder(context.Background(), filepath.Join(testsupport.BaseDir(cfg), "absent"))
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddFilesSkipsOversized(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMaxFileSizeMB(1))
	store := testsupport.MustOpenStore(t, cfg)

	path := filepath.Join(testsupport.BaseDir(cfg), "huge.mp3")
	testsupport.WriteFile(t, path, 2*1024*1024)

	svc := ingest.NewService(cfg, store, logging.NewNop())
	result, err := svc.AddFiles(context.Background(), path)
	if err != nil {
		t.Fatalf("AddFiles failed: %v", err)
	}
	if len(result.Added) != 0 {
		t.Fatalf("oversized file must not be queued: %+v", result.Added)
	}
	if len(result.Skipped) != 1 || !strings.Contains(result.Skipped[0].Reason, "1MB") {
		t.Fatalf("skip should name the limit: %+v", result.Skipped)
	}
}

func TestAddFilesSkipsDuplicates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	path := filepath.Join(testsupport.BaseDir(cfg), "visit.mp3")
	testsupport.WriteFile(t, path, 256)

	svc := ingest.NewService(cfg, store, logging.NewNop())
	first, err := svc.AddFiles(context.Background(), path)
	if err != nil {
		t.Fatalf("first AddFiles failed: %v", err)
	}
	if len(first.Added) != 1 {
		t.Fatalf("first add should queue the file: %+v", first)
	}

	second, err := svc.AddFiles(context.Background(), path)
	if err != nil {
		t.Fatalf("second AddFiles failed: %v", err)
	}
	if len(second.Added) != 0 {
		t.Fatalf("duplicate must not be queued again: %+v", second.Added)
	}
	if len(second.Skipped) != 1 || !strings.Contains(second.Skipped[0].Reason, "already queued") {
		t.Fatalf("skip should report the duplicate: %+v", second.Skipped)
	}
}

func TestAddFilesSkipsUnsupportedExtension(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	path := filepath.Join(testsupport.BaseDir(cfg), "notes.pdf")
	testsupport.WriteFile(t, path, 128)

	svc := ingest.NewService(cfg, store, logging.NewNop())
	result, err := svc.AddFiles(context.Background(), path)
	if err != nil {
		t.Fatalf("AddFiles failed: %v", err)
	}
	if len(result.Added) != 0 {
		t.Fatalf("unsupported file must not be queued: %+v", result.Added)
	}
	if len(result.Skipped) != 1 || !strings.Contains(result.Skipped[0].Reason, ".pdf") {
		t.Fatalf("skip should name the extension: %+v", result.Skipped)
	}
}

func TestAddFilesSkipsMissingFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	svc := ingest.NewService(cfg, store, logging.NewNop())
	result, err := svc.AddFiles(context.Background(), filepath.Join(testsupport.BaseDir(cfg), "ghost.mp3"))
	if err != nil {
		t.Fatalf("AddFiles failed: %v", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "file not found" {
		t.Fatalf("skip = %+v", result.Skipped)
	}

	// Missing files never reach the queue.
	items, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("queue should be empty, got %d items", len(items))
	}
}
