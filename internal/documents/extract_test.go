package documents_test

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxify/internal/documents"
)

func TestExtractTxt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("The patient presented with chest pain."), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	text, err := documents.Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != "The patient presented with chest pain." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	writeDocx(t, path, []string{"Acute myocardial infarction.", "Follow-up in two weeks."})

	text, err := documents.Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %q", len(lines), text)
	}
	if lines[0] != "Acute myocardial infarction." {
		t.Fatalf("first paragraph = %q", lines[0])
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.doc")
	if err := os.WriteFile(path, []byte("binary blob"), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	_, err := documents.Extract(path)
	if !errors.Is(err, documents.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestIsSupported(t *testing.T) {
	cases := map[string]bool{
		"a/notes.txt":  true,
		"a/notes.TXT":  true,
		"report.docx":  true,
		"legacy.doc":   false,
		"audio.mp3":    false,
		"no-extension": false,
	}
	for path, want := range cases {
		if got := documents.IsSupported(path); got != want {
			t.Errorf("IsSupported(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestExtractCorruptDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	if _, err := documents.Extract(path); err == nil {
		t.Fatal("expected error for corrupt docx container")
	}
}

// writeDocx builds a minimal docx container with one <w:p> per paragraph.
func writeDocx(t *testing.T, path string, paragraphs []string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	entry, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}

	var body strings.Builder
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(p)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	if _, err := entry.Write([]byte(body.String())); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}
