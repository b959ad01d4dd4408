package download

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/handiism/audiobook-downloader/internal/audio"
	"github.com/handiism/audiobook-downloader/internal/config"
	ioutils "github.com/handiism/audiobook-downloader/internal/io"
	"github.com/handiism/audiobook-downloader/internal/logger"
	"github.com/handiism/audiobook-downloader/internal/model"
)

// ErrNoAudioURL marks an item whose audio asset was never resolved and
// whose MP3 is not already on disk. Check with errors.Is.
var ErrNoAudioURL = errors.New("no audio URL resolved")

// Processor runs one audiobook through the per-item pipeline:
//
//	folder → cover → audio → tag
//
// Each step is guarded so reruns are idempotent:
//   - the folder is created only if absent
//   - cover and audio downloads are skipped when the file already
//     exists at its deterministic path, existence being the sole
//     completion marker
//   - tagging always runs, so metadata stays current even when every
//     download was skipped
//
// A failure at any step aborts this item only and propagates to the
// caller; no partial state is cleaned up.
//
// Example:
//
//	proc := download.NewProcessor(record, destRoot, settings, retriever, tagger, images, log)
//	if err := proc.Process(ctx); err != nil {
//	    log.Error("audiobook failed", "title", record.Title, "error", err)
//	    // continue with the next record
//	}
type Processor struct {
	record    *model.AudiobookRecord
	target    *model.DownloadTarget
	settings  *config.Settings
	retriever *Retriever
	tagger    *audio.Tagger
	images    *ioutils.ImageService
	log       *logger.Logger
}

// NewProcessor creates a Processor for one record, computing its
// on-disk target under destRoot.
func NewProcessor(record *model.AudiobookRecord, destRoot string, settings *config.Settings,
	retriever *Retriever, tagger *audio.Tagger, images *ioutils.ImageService, log *logger.Logger) *Processor {
	return &Processor{
		record:    record,
		target:    model.NewDownloadTarget(record.Title, destRoot),
		settings:  settings,
		retriever: retriever,
		tagger:    tagger,
		images:    images,
		log:       log,
	}
}

// Target returns the item's computed on-disk layout.
func (p *Processor) Target() *model.DownloadTarget {
	return p.target
}

// Process runs the item to completion or first failure.
func (p *Processor) Process(ctx context.Context) error {
	if err := ioutils.EnsureDir(p.target.FolderPath); err != nil {
		return fmt.Errorf("creating folder %s: %w", p.target.FolderPath, err)
	}

	if err := p.ensureCover(ctx); err != nil {
		return err
	}

	if err := p.ensureAudio(ctx); err != nil {
		return err
	}

	return p.tag()
}

// ensureCover downloads the cover unless it already exists.
//
// A record without a cover URL is not an error; the item proceeds and
// is tagged without artwork.
func (p *Processor) ensureCover(ctx context.Context) error {
	if ioutils.FileExists(p.target.CoverPath) {
		p.log.Debug("cover already present, skipping", "title", p.record.Title)
		return nil
	}

	if !p.record.HasCover() {
		p.log.Warn("no cover URL for audiobook, continuing without artwork", "title", p.record.Title)
		return nil
	}

	if err := p.retriever.FetchOnce(ctx, p.record.CoverURL, p.target.CoverPath); err != nil {
		return fmt.Errorf("cover for %q: %w", p.record.Title, err)
	}
	return nil
}

// ensureAudio downloads the MP3 via the retrying variant unless it
// already exists.
func (p *Processor) ensureAudio(ctx context.Context) error {
	if ioutils.FileExists(p.target.AudioPath) {
		p.log.Debug("audio already present, skipping", "title", p.record.Title)
		return nil
	}

	if !p.record.HasAudio() {
		return fmt.Errorf("audiobook %q: %w", p.record.Title, ErrNoAudioURL)
	}

	if err := p.retriever.Fetch(ctx, p.record.AudioURL, p.target.AudioPath); err != nil {
		return fmt.Errorf("audio for %q: %w", p.record.Title, err)
	}
	return nil
}

// tag writes title/album/artwork frames. It runs on every pass,
// including full-skip reruns.
func (p *Processor) tag() error {
	p.log.Info("setting metadata", "path", p.target.AudioPath)

	artwork, err := p.loadArtwork()
	if err != nil {
		return err
	}

	if err := p.tagger.Tag(p.target.AudioPath, p.record.Title, p.settings.AlbumName, artwork); err != nil {
		return fmt.Errorf("tagging %q: %w", p.record.Title, err)
	}
	return nil
}

// loadArtwork reads the cover from disk and applies the configured
// resize/convert options. A missing cover yields nil artwork; a
// processing failure falls back to the raw bytes.
func (p *Processor) loadArtwork() ([]byte, error) {
	if !ioutils.FileExists(p.target.CoverPath) {
		return nil, nil
	}

	raw, err := os.ReadFile(p.target.CoverPath)
	if err != nil {
		return nil, fmt.Errorf("reading cover %s: %w", p.target.CoverPath, err)
	}

	prepared, err := p.images.PrepareCoverArt(raw, p.settings.ResizeCoverInTags,
		p.settings.CoverInTagsMaxSize, p.settings.ConvertCoverToJPEG)
	if err != nil {
		p.log.Warn("cover processing failed, embedding original bytes", "title", p.record.Title, "error", err)
		return raw, nil
	}
	return prepared, nil
}
