package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/handiism/audiobook-downloader/internal/config"
	httpclient "github.com/handiism/audiobook-downloader/internal/http"
	"github.com/handiism/audiobook-downloader/internal/logger"
)

// testSettings returns defaults with retry cooldown zeroed so retry
// tests run instantly.
func testSettings() *config.Settings {
	settings := config.DefaultSettings()
	settings.DownloadRetryCooldown = 0
	return settings
}

func newTestRetriever(settings *config.Settings) *Retriever {
	return NewRetriever(httpclient.NewClient(nil), settings, logger.Discard())
}

func TestRetriever_FetchSucceedsFirstAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("mp3 payload"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "a.mp3")
	retriever := newTestRetriever(testSettings())

	if err := retriever.Fetch(context.Background(), srv.URL, dest); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("made %d requests, want 1", calls.Load())
	}
	if data, _ := os.ReadFile(dest); string(data) != "mp3 payload" {
		t.Errorf("file content = %q", data)
	}
}

func TestRetriever_FetchExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "a.mp3")
	retriever := newTestRetriever(testSettings())

	err := retriever.Fetch(context.Background(), srv.URL, dest)
	if err == nil {
		t.Fatal("expected error from always-failing transport")
	}
	if !errors.Is(err, ErrMaxRetries) {
		t.Errorf("error %v is not ErrMaxRetries", err)
	}
	if calls.Load() != 3 {
		t.Errorf("made %d attempts, want exactly 3", calls.Load())
	}
}

func TestRetriever_FetchRecoversOnThirdAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "flaky", http.StatusBadGateway)
			return
		}
		w.Write([]byte("finally"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "a.mp3")
	retriever := newTestRetriever(testSettings())

	if err := retriever.Fetch(context.Background(), srv.URL, dest); err != nil {
		t.Fatalf("Fetch should succeed on attempt 3: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("made %d attempts, want 3", calls.Load())
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("stat destination: %v", err)
	}
	if info.Size() == 0 {
		t.Error("destination file is empty after successful fetch")
	}
}

func TestRetriever_EmptyBodyCountsAsFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK) // 200 with no body
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "a.mp3")
	retriever := newTestRetriever(testSettings())

	err := retriever.Fetch(context.Background(), srv.URL, dest)
	if !errors.Is(err, ErrMaxRetries) {
		t.Errorf("empty 200 responses should exhaust retries, got %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("made %d attempts, want 3", calls.Load())
	}
}

func TestRetriever_FetchSendsAudioHeaders(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("data"))
	}))
	defer srv.Close()

	settings := testSettings()
	retriever := newTestRetriever(settings)

	dest := filepath.Join(t.TempDir(), "a.mp3")
	if err := retriever.Fetch(context.Background(), srv.URL, dest); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotAccept != settings.AudioAccept {
		t.Errorf("Accept = %q, want %q", gotAccept, settings.AudioAccept)
	}
}

func TestRetriever_FetchOnceDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "cover.jpg")
	retriever := newTestRetriever(testSettings())

	if err := retriever.FetchOnce(context.Background(), srv.URL, dest); err == nil {
		t.Fatal("expected error from failing transport")
	}
	if calls.Load() != 1 {
		t.Errorf("made %d requests, want exactly 1", calls.Load())
	}
}

func TestRetriever_FetchOnceSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg bytes"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "cover.jpg")
	retriever := newTestRetriever(testSettings())

	if err := retriever.FetchOnce(context.Background(), srv.URL, dest); err != nil {
		t.Fatalf("FetchOnce: %v", err)
	}
	if data, _ := os.ReadFile(dest); string(data) != "jpeg bytes" {
		t.Errorf("file content = %q", data)
	}
}

func TestRetriever_FetchCancelledBetweenAttempts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	settings := testSettings()
	settings.DownloadRetryCooldown = 10 // long cooldown so cancellation wins the select
	retriever := newTestRetriever(settings)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dest := filepath.Join(t.TempDir(), "a.mp3")
	err := retriever.Fetch(ctx, srv.URL, dest)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
