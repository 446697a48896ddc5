package services

import (
	"context"
	"testing"
)

func TestContextAnnotations(t *testing.T) {
	ctx := context.Background()

	if _, ok := ItemIDFromContext(ctx); ok {
		t.Fatal("empty context should not carry an item ID")
	}

	ctx = WithItemID(ctx, 42)
	ctx = WithStage(ctx, "cleaning")
	ctx = WithRequestID(ctx, "req-1")

	if id, ok := ItemIDFromContext(ctx); !ok || id != 42 {
		t.Fatalf("item ID = %d, %v", id, ok)
	}
	if stage, ok := StageFromContext(ctx); !ok || stage != "cleaning" {
		t.Fatalf("stage = %q, %v", stage, ok)
	}
	if id, ok := RequestIDFromContext(ctx); !ok || id != "req-1" {
		t.Fatalf("request ID = %q, %v", id, ok)
	}
}

func TestEmptyAnnotationsIgnored(t *testing.T) {
	ctx := WithStage(context.Background(), "")
	if _, ok := StageFromContext(ctx); ok {
		t.Fatal("empty stage should not annotate")
	}
	ctx = WithRequestID(ctx, "")
	if _, ok := RequestIDFromContext(ctx); ok {
		t.Fatal("empty request ID should not annotate")
	}
}
