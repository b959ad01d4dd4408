package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultChunkSize is the copy-buffer size used when streaming
// downloads to disk if the caller does not specify one.
const DefaultChunkSize = 8192

// Client wraps HTTP operations with the header configuration the
// catalog site expects.
//
// Client provides:
//   - A configurable default header set (Accept, Accept-Language, User-Agent)
//   - Timeout handling
//   - Chunked streaming file downloads that bound memory use
//
// Example usage:
//
//	client := NewClient(settings.PageHeaders())
//
//	// Fetch HTML content
//	body, err := client.Get(ctx, "https://kubus.pl/audiobooki/")
//
//	// Stream a file to disk with per-request headers
//	written, err := client.DownloadFile(ctx, mp3URL, "/path/to/file.mp3",
//	    settings.AudioHeaders(), 8192)
type Client struct {
	httpClient *http.Client
	headers    map[string]string
}

// NewClient creates a new HTTP client with the given default headers.
//
// The client is configured with a 60 second timeout. Redirects are
// followed by the underlying http.Client.
func NewClient(headers map[string]string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		headers: headers,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request carries the client's default headers.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 2xx
//   - Reading the body fails
//
// Example:
//
//	page, err := client.Get(ctx, "https://kubus.pl/audiobooki/")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.applyHeaders(req, nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// DownloadFile streams a file to the specified path and reports the
// number of bytes written.
//
// The file is created (or truncated if it exists) and the body is
// copied to disk through a fixed-size buffer, so memory use stays
// bounded regardless of payload size. A chunkSize of zero or less
// falls back to DefaultChunkSize.
//
// extraHeaders override the client's defaults for this request only;
// pass nil to use the defaults as-is.
//
// A failed download may leave a partially-written file at destPath;
// the caller decides what that means.
//
// Example:
//
//	written, err := client.DownloadFile(ctx, mp3URL, "/audiobooks/a.mp3",
//	    settings.AudioHeaders(), settings.DownloadChunkSize)
func (c *Client) DownloadFile(ctx context.Context, url, destPath string, extraHeaders map[string]string, chunkSize int) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	c.applyHeaders(req, extraHeaders)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return io.CopyBuffer(file, resp.Body, make([]byte, chunkSize))
}

// applyHeaders sets the default headers, then the per-request overrides.
func (c *Client) applyHeaders(req *http.Request, extra map[string]string) {
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range extra {
		req.Header.Set(k, v)
	}
}
