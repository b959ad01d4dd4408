// Package download provides the acquisition pipeline: resilient file
// retrieval, per-item processing, and run orchestration.
//
// # Manager
//
// The Manager drives a whole run:
//
//  1. Fetch and parse the catalog page
//  2. Extract one record per audiobook (resolving audio URLs)
//  3. For each record, run a Processor to completion or failure
//  4. Optionally write a library playlist
//
// # Basic Usage
//
//	manager := download.NewManager(settings, destDir, log, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx); err != nil {
//	    return err
//	}
//	if err := manager.Run(ctx); err != nil {
//	    return err
//	}
//
// # Idempotence and resumability
//
// The filesystem is the only durable state. Each item's folder, cover,
// and MP3 live at paths derived from its title; a file that exists is
// skipped, a file that does not is downloaded. Tagging runs on every
// pass. Rerunning the tool therefore resumes exactly where the last
// run stopped, and processing the same catalog twice changes nothing
// but tag freshness.
//
// # Failure isolation
//
// A failing item (exhausted retries, missing audio URL, tagging I/O
// error) is logged and skipped; the run continues with the next item.
// A failed catalog fetch yields an empty run. Only context
// cancellation aborts the whole run.
//
// # Retry Logic
//
// Audio downloads are retried up to settings.DownloadMaxRetries times
// with an exponential cooldown (DownloadRetryCooldown ·
// DownloadRetryExponentⁿ seconds). Empty 200-responses and zero-byte
// files count as failed attempts. Cover downloads get a single
// attempt; they are cheap to retry on the next run.
package download
