// Package http provides an HTTP client configured for catalog and
// audio requests.
//
// The Client in this package handles:
//   - Default header sets (the catalog site cares about User-Agent and Accept)
//   - Per-request header overrides for audio downloads
//   - Chunked streaming downloads that bound memory use
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient(settings.PageHeaders())
//
//	// Fetch an HTML page
//	page, err := client.Get(ctx, "https://kubus.pl/audiobooki/")
//
//	// Stream an MP3 to disk
//	written, err := client.DownloadFile(ctx, mp3URL, "/audiobooks/a.mp3",
//	    settings.AudioHeaders(), 8192)
//
// DownloadFile reports bytes written so callers can detect empty
// payloads, which the catalog's audio host occasionally serves with a
// 200 status.
package http
