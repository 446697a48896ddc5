package notifications

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"voxify/internal/config"
)

type recordedRequest struct {
	title    string
	priority string
	tags     string
	body     string
}

func newRecordingServer(t *testing.T) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var mu sync.Mutex
	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{
			title:    r.Header.Get("Title"),
			priority: r.Header.Get("Priority"),
			tags:     r.Header.Get("Tags"),
			body:     string(body),
		})
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		cp := make([]recordedRequest, len(requests))
		copy(cp, requests)
		return cp
	}
}

func testConfig(topic string) *config.Config {
	cfg := config.Default()
	cfg.Notifications.NtfyTopic = topic
	cfg.Notifications.Queue = true
	cfg.Notifications.Training = true
	cfg.Notifications.Errors = true
	return &cfg
}

func TestNewServiceWithoutTopicIsNoop(t *testing.T) {
	cfg := config.Default()
	svc := NewService(&cfg)
	if _, ok := svc.(noopService); !ok {
		t.Fatalf("expected noop service, got %T", svc)
	}
	if err := svc.NotifyQueueStarted(context.Background(), 3); err != nil {
		t.Fatalf("noop notify failed: %v", err)
	}
}

func TestNotifyQueueCompleted(t *testing.T) {
	server, recorded := newRecordingServer(t)
	svc := NewService(testConfig(server.URL))

	if err := svc.NotifyQueueCompleted(context.Background(), 4, 1, 90*time.Second); err != nil {
		t.Fatalf("NotifyQueueCompleted failed: %v", err)
	}

	requests := recorded()
	if len(requests) != 1 {
		t.Fatalf("expected one request, got %d", len(requests))
	}
	req := requests[0]
	if req.title != "Voxify - Queue Complete (with errors)" {
		t.Fatalf("title = %q", req.title)
	}
	if req.body != "Queue processing complete: 4 succeeded, 1 failed in 1m30s" {
		t.Fatalf("body = %q", req.body)
	}
}

func TestNotifyTrainingCompleted(t *testing.T) {
	server, recorded := newRecordingServer(t)
	svc := NewService(testConfig(server.URL))

	if err := svc.NotifyTrainingCompleted(context.Background(), 120, 34); err != nil {
		t.Fatalf("NotifyTrainingCompleted failed: %v", err)
	}
	requests := recorded()
	if len(requests) != 1 || requests[0].body != "Vocabulary trained: 120 terms, 34 phrases" {
		t.Fatalf("unexpected requests: %+v", requests)
	}
}

func TestNotifyErrorSetsPriority(t *testing.T) {
	server, recorded := newRecordingServer(t)
	svc := NewService(testConfig(server.URL))

	if err := svc.NotifyError(context.Background(), errors.New("whisper timed out"), "transcribing"); err != nil {
		t.Fatalf("NotifyError failed: %v", err)
	}
	requests := recorded()
	if len(requests) != 1 {
		t.Fatalf("expected one request, got %d", len(requests))
	}
	if requests[0].priority != "high" {
		t.Fatalf("priority = %q", requests[0].priority)
	}
	if requests[0].body != "Error with transcribing: whisper timed out" {
		t.Fatalf("body = %q", requests[0].body)
	}
}

func TestCategoryGatesSuppressSends(t *testing.T) {
	server, recorded := newRecordingServer(t)
	cfg := testConfig(server.URL)
	cfg.Notifications.Queue = false
	cfg.Notifications.Training = false
	svc := NewService(cfg)

	if err := svc.NotifyQueueStarted(context.Background(), 2); err != nil {
		t.Fatalf("NotifyQueueStarted failed: %v", err)
	}
	if err := svc.NotifyTrainingCompleted(context.Background(), 1, 1); err != nil {
		t.Fatalf("NotifyTrainingCompleted failed: %v", err)
	}
	if got := recorded(); len(got) != 0 {
		t.Fatalf("disabled categories must not send, got %+v", got)
	}
}

func TestSendReportsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic rejected", http.StatusForbidden)
	}))
	defer server.Close()

	svc := NewService(testConfig(server.URL))
	if err := svc.TestNotification(context.Background()); err == nil {
		t.Fatal("expected error from non-2xx response")
	}
}
