// Package ioutils provides file system and image processing utilities.
//
// # File Operations
//
//	// Ensure an item folder exists (idempotent)
//	err := ioutils.EnsureDir("/audiobooks/Story A")
//
//	// Existence check used as the pipeline's completion marker
//	if ioutils.FileExists("/audiobooks/Story A/cover.jpg") {
//	    // already retrieved, skip
//	}
//
//	// Write playlist output
//	err := ioutils.WriteFile("/audiobooks/audiobooks.m3u", content)
//
// # Cover Art Processing
//
// The ImageService prepares downloaded cover bytes for ID3 embedding:
//
//	svc := ioutils.NewImageService()
//	artwork, err := svc.PrepareCoverArt(raw, true, 1000, true)
//
// With both options disabled the input bytes pass through untouched,
// which is the pipeline's default behavior.
package ioutils
