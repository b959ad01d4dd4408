package download

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"
	"github.com/handiism/audiobook-downloader/internal/audio"
	"github.com/handiism/audiobook-downloader/internal/catalog"
	"github.com/handiism/audiobook-downloader/internal/config"
	httpclient "github.com/handiism/audiobook-downloader/internal/http"
	ioutils "github.com/handiism/audiobook-downloader/internal/io"
	"github.com/handiism/audiobook-downloader/internal/logger"
	"github.com/handiism/audiobook-downloader/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// PlaylistFileName is the stem of the optional library playlist
// written to the destination root.
const PlaylistFileName = "audiobooks"

// Manager sequences the acquisition pipeline: catalog extraction, then
// one Processor per record, strictly one item in flight.
//
// The pipeline is deliberately sequential: one conservative client,
// one item in flight, no shared state to coordinate.
//
// Example usage:
//
//	manager := download.NewManager(settings, "/audiobooks", log, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx); err != nil {
//	    return err
//	}
//	if err := manager.Run(ctx); err != nil {
//	    return err // only context cancellation surfaces here
//	}
type Manager struct {
	settings  *config.Settings
	client    *httpclient.Client
	extractor *catalog.Extractor
	retriever *Retriever
	tagger    *audio.Tagger
	images    *ioutils.ImageService
	playlist  *audio.PlaylistCreator
	log       *logger.Logger

	destRoot string
	records  []*model.AudiobookRecord

	itemsDone   atomic.Int32
	itemsFailed atomic.Int32

	onProgress func(ProgressEvent)
}

// NewManager creates a pipeline Manager downloading into destRoot.
//
// onProgress may be nil; pass a callback to receive human-readable
// progress events (the CLI prints them, the TUI renders them).
func NewManager(settings *config.Settings, destRoot string, log *logger.Logger, onProgress func(ProgressEvent)) *Manager {
	client := httpclient.NewClient(settings.PageHeaders())
	resolver := catalog.NewResolver(client, settings.DetailURLTemplate, log)

	playlistFormat := audio.FormatM3U
	if settings.PlaylistFormat == "pls" {
		playlistFormat = audio.FormatPLS
	}

	return &Manager{
		settings:   settings,
		client:     client,
		extractor:  catalog.NewExtractor(resolver, log),
		retriever:  NewRetriever(client, settings, log),
		tagger:     audio.NewTagger(audio.DefaultTagConfig()),
		images:     ioutils.NewImageService(),
		playlist:   audio.NewPlaylistCreator(playlistFormat, settings.M3UExtended),
		log:        log,
		destRoot:   destRoot,
		onProgress: onProgress,
	}
}

// Initialize fetches the catalog page and extracts the record set.
//
// A catalog fetch or parse failure is logged and yields an empty
// record set rather than an error: the run then simply has nothing to
// do, matching the contract that the driver never raises for a bad
// catalog.
func (m *Manager) Initialize(ctx context.Context) error {
	m.log.Info("fetching catalog page", "url", m.settings.CatalogURL)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching catalog: %s", m.settings.CatalogURL), Level: LevelVerbose})

	page, err := m.client.Get(ctx, m.settings.CatalogURL)
	if err != nil {
		m.log.Error("failed to fetch catalog page", "url", m.settings.CatalogURL, "error", err)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching catalog: %v", err), Level: LevelError})
		m.records = nil
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		m.log.Error("failed to parse catalog page", "error", err)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error parsing catalog: %v", err), Level: LevelError})
		m.records = nil
		return nil
	}

	m.records = m.extractor.Extract(ctx, doc)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audiobooks", len(m.records)), Level: LevelInfo})
	return nil
}

// Run processes every extracted record sequentially.
//
// A failing item is logged and skipped; it never aborts the rest of
// the run. Only context cancellation makes Run return an error.
func (m *Manager) Run(ctx context.Context) error {
	for _, record := range m.records {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.progress(ProgressEvent{Message: fmt.Sprintf("Processing: %s", record.Title), Level: LevelVerbose})

		proc := NewProcessor(record, m.destRoot, m.settings, m.retriever, m.tagger, m.images, m.log)
		if err := proc.Process(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.itemsFailed.Add(1)
			m.log.Error("audiobook failed", "title", record.Title, "error", err)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %v", record.Title, err), Level: LevelError})
			continue
		}

		m.itemsDone.Add(1)
		m.log.Info("audiobook complete", "title", record.Title)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Completed: %s", record.Title), Level: LevelSuccess})
	}

	if m.settings.CreatePlaylist {
		m.writePlaylist()
	}

	return nil
}

// Titles returns the titles of all extracted records, in catalog order.
func (m *Manager) Titles() []string {
	titles := make([]string, len(m.records))
	for i, record := range m.records {
		titles[i] = record.Title
	}
	return titles
}

// Progress returns current pipeline counters. Safe to call from
// another goroutine while Run is in flight.
func (m *Manager) Progress() (done, failed, total int32) {
	return m.itemsDone.Load(), m.itemsFailed.Load(), int32(len(m.records))
}

// writePlaylist generates the library playlist over every audiobook
// whose MP3 is on disk, whether downloaded this run or earlier.
func (m *Manager) writePlaylist() {
	var entries []audio.PlaylistEntry
	for _, record := range m.records {
		target := model.NewDownloadTarget(record.Title, m.destRoot)
		if !ioutils.FileExists(target.AudioPath) {
			continue
		}
		entries = append(entries, audio.PlaylistEntry{
			Title: record.Title,
			Path:  filepath.Join(target.Title, target.Title+".mp3"),
		})
	}

	playlistFormat := audio.FormatM3U
	if m.settings.PlaylistFormat == "pls" {
		playlistFormat = audio.FormatPLS
	}
	path := filepath.Join(m.destRoot, PlaylistFileName+playlistFormat.Extension())

	content := m.playlist.Create(m.settings.AlbumName, entries)
	if err := ioutils.WriteFile(path, []byte(content)); err != nil {
		m.log.Warn("failed to write playlist", "path", path, "error", err)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing playlist: %v", err), Level: LevelWarning})
		return
	}

	m.log.Info("playlist written", "path", path, "entries", len(entries))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Playlist written: %s", path), Level: LevelSuccess})
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
