package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxify/internal/testsupport"
	"voxify/internal/vocabulary"
)

func TestCheckDirectoryAccessOK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccessNotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccessNotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckBinaryMissing(t *testing.T) {
	result := CheckBinary("test", "voxify-binary-that-cannot-exist")
	if result.Passed {
		t.Fatal("expected failure for missing binary")
	}
}

func TestCheckBinaryFound(t *testing.T) {
	testsupport.NewConfig(t, testsupport.WithStubbedBinaries("uvx"))
	result := CheckBinary("test", "uvx")
	if !result.Passed {
		t.Fatalf("expected pass for stubbed binary, got: %s", result.Detail)
	}
}

func TestCheckDiskSpaceOK(t *testing.T) {
	result := CheckDiskSpace("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "MB free") {
		t.Fatalf("detail should report free space, got: %s", result.Detail)
	}
}

func TestCheckVocabularyUntrained(t *testing.T) {
	result := CheckVocabulary(filepath.Join(t.TempDir(), "vocabulary.json"))
	if !result.Passed {
		t.Fatal("untrained vocabulary must not fail preflight")
	}
	if !strings.Contains(result.Detail, "not trained") {
		t.Fatalf("detail should flag the untrained state, got: %s", result.Detail)
	}
}

func TestCheckVocabularyTrained(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary.json")
	vocab := vocabulary.New([]string{"stent", "lesion"}, []string{"right coronary artery"})
	if err := vocabulary.Save(vocab, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	result := CheckVocabulary(path)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "2 terms") {
		t.Fatalf("detail should count terms, got: %s", result.Detail)
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil); results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAllReportsFailures(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries("uvx"))
	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatal(err)
	}

	results := RunAll(context.Background(), cfg)
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	if failed := Failed(results); len(failed) != 0 {
		t.Fatalf("expected all checks to pass, failures: %+v", failed)
	}

	cfg.Paths.OutputDir = filepath.Join(testsupport.BaseDir(cfg), "absent")
	results = RunAll(context.Background(), cfg)
	if failed := Failed(results); len(failed) == 0 {
		t.Fatal("expected failures for missing output dir")
	}
}
