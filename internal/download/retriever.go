package download

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/handiism/audiobook-downloader/internal/config"
	httpclient "github.com/handiism/audiobook-downloader/internal/http"
	"github.com/handiism/audiobook-downloader/internal/logger"
)

// ErrMaxRetries is wrapped into the error returned when the retrying
// downloader exhausts its attempts. Check with errors.Is.
var ErrMaxRetries = errors.New("max retries exceeded")

// errEmptyPayload marks a 200 response whose body carried no bytes.
// The audio host occasionally does this; it counts as a failed attempt.
var errEmptyPayload = errors.New("no content received")

// Retriever downloads binary resources to local paths.
//
// Two variants exist:
//   - Fetch: bounded retry with exponential cooldown and empty-payload
//     detection, for audio files
//   - FetchOnce: single attempt that propagates the first failure, for
//     cover images
//
// Example usage:
//
//	retriever := download.NewRetriever(client, settings, log)
//
//	if err := retriever.Fetch(ctx, mp3URL, target.AudioPath); err != nil {
//	    if errors.Is(err, download.ErrMaxRetries) {
//	        // item is a terminal failure for this run
//	    }
//	}
type Retriever struct {
	client       *httpclient.Client
	audioHeaders map[string]string
	maxRetries   int
	cooldown     float64
	exponent     float64
	chunkSize    int
	log          *logger.Logger
}

// NewRetriever creates a Retriever configured from settings.
func NewRetriever(client *httpclient.Client, settings *config.Settings, log *logger.Logger) *Retriever {
	return &Retriever{
		client:       client,
		audioHeaders: settings.AudioHeaders(),
		maxRetries:   settings.DownloadMaxRetries,
		cooldown:     settings.DownloadRetryCooldown,
		exponent:     settings.DownloadRetryExponent,
		chunkSize:    settings.DownloadChunkSize,
		log:          log,
	}
}

// Fetch downloads url to destPath with bounded retry.
//
// An attempt counts as failed on a transport error, on a
// successfully-completed-but-empty body, or on a zero-byte file after
// the write. Attempts are separated by an exponential cooldown
// (cooldown·exponentⁿ seconds) that respects context cancellation.
//
// After exhausting attempts the returned error wraps ErrMaxRetries.
// The destination may then hold a partially-written or zero-byte file;
// a later run's existence check will treat it as complete. Nothing
// here verifies content.
func (r *Retriever) Fetch(ctx context.Context, url, destPath string) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		r.log.Info("downloading audio file", "url", url, "attempt", attempt)

		lastErr = r.attempt(ctx, url, destPath)
		if lastErr == nil {
			r.log.Info("audio file downloaded", "path", destPath)
			return nil
		}

		r.log.Warn("download attempt failed", "url", url, "attempt", attempt, "error", lastErr)

		if attempt < r.maxRetries {
			if err := r.waitForRetry(ctx, attempt); err != nil {
				return err
			}
		}
	}

	return fmt.Errorf("downloading %s failed after %d attempts (%v): %w", url, r.maxRetries, lastErr, ErrMaxRetries)
}

// FetchOnce downloads url to destPath in a single attempt.
//
// Used for covers, where a failure is cheap to hit again on the next
// run. Any transport failure propagates immediately.
func (r *Retriever) FetchOnce(ctx context.Context, url, destPath string) error {
	r.log.Info("downloading file", "url", url, "path", destPath)

	if _, err := r.client.DownloadFile(ctx, url, destPath, nil, r.chunkSize); err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	return nil
}

// attempt performs one download try with the audio header set and
// applies the empty-payload checks.
func (r *Retriever) attempt(ctx context.Context, url, destPath string) error {
	written, err := r.client.DownloadFile(ctx, url, destPath, r.audioHeaders, r.chunkSize)
	if err != nil {
		return err
	}

	if written == 0 {
		return errEmptyPayload
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return errors.New("downloaded file is empty")
	}

	return nil
}

// waitForRetry sleeps for the attempt's cooldown or until ctx is done.
func (r *Retriever) waitForRetry(ctx context.Context, attempt int) error {
	cooldown := r.cooldown * math.Pow(r.exponent, float64(attempt-1))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
		return nil
	}
}
