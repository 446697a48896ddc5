package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("exit status 1")
	err := Wrap(ErrExternalTool, "transcribing", "whisper", "run failed", base)

	if !errors.Is(err, ErrExternalTool) {
		t.Fatal("expected ErrExternalTool marker")
	}
	if !errors.Is(err, base) {
		t.Fatal("expected underlying error to be wrapped")
	}
	msg := err.Error()
	for _, part := range []string{"transcribing", "whisper", "run failed", "exit status 1"} {
		if !strings.Contains(msg, part) {
			t.Fatalf("message %q missing %q", msg, part)
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatal("nil marker should default to ErrTransient")
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("empty detail should fall back, got %q", err.Error())
	}
}
