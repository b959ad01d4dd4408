package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestClient_Get(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	client := NewClient(map[string]string{"User-Agent": "test-agent"})
	body, err := client.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if string(body) != "<html>ok</html>" {
		t.Errorf("body = %q", body)
	}
	if gotUA != "test-agent" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "test-agent")
	}
}

func TestClient_GetNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(nil)
	if _, err := client.Get(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestClient_DownloadFile(t *testing.T) {
	payload := make([]byte, 20000) // larger than one chunk
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "file.mp3")
	client := NewClient(map[string]string{"Accept": "text/html"})

	written, err := client.DownloadFile(context.Background(), srv.URL, dest,
		map[string]string{"Accept": "audio/mpeg"}, 8192)
	if err != nil {
		t.Fatalf("DownloadFile: %v", err)
	}

	if written != int64(len(payload)) {
		t.Errorf("written = %d, want %d", written, len(payload))
	}
	if gotAccept != "audio/mpeg" {
		t.Errorf("Accept = %q, want override %q", gotAccept, "audio/mpeg")
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading destination: %v", err)
	}
	if len(data) != len(payload) {
		t.Errorf("file size = %d, want %d", len(data), len(payload))
	}
}

func TestClient_DownloadFileEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "empty.mp3")
	client := NewClient(nil)

	written, err := client.DownloadFile(context.Background(), srv.URL, dest, nil, 0)
	if err != nil {
		t.Fatalf("DownloadFile: %v", err)
	}
	if written != 0 {
		t.Errorf("written = %d, want 0 for empty body", written)
	}
}
