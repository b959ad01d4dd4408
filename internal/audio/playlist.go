package audio

import (
	"fmt"
	"strings"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS
)

// Extension returns the file extension for the playlist format, including the dot.
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case FormatPLS:
		return ".pls"
	default:
		return ".m3u"
	}
}

// PlaylistEntry is one audiobook in a library playlist.
type PlaylistEntry struct {
	// Title is the audiobook title.
	Title string

	// Path is the MP3 path relative to the playlist file, typically
	// "<Title>/<Title>.mp3".
	Path string
}

// PlaylistCreator generates a library playlist over downloaded audiobooks.
//
// The playlist lives in the destination root and references each
// audiobook's MP3 by its relative path, so the destination directory
// stays relocatable as a whole.
//
// Example:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true)
//	content := creator.Create("Kubus Storytel", entries)
//	ioutils.WriteFile("/audiobooks/audiobooks.m3u", []byte(content))
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:-1,Kubus Storytel - Story A
//	// Story A/Story A.mp3
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended controls #EXTINF lines for the M3U format and is ignored
// for PLS.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Create generates playlist content for the given entries.
//
// album is used for the display name in extended M3U lines. Durations
// are not known to the pipeline (nothing probes the MP3s), so extended
// info lines carry -1, the conventional "unknown length" marker.
func (p *PlaylistCreator) Create(album string, entries []PlaylistEntry) string {
	if p.format == FormatPLS {
		return p.createPLS(entries)
	}
	return p.createM3U(album, entries)
}

func (p *PlaylistCreator) createM3U(album string, entries []PlaylistEntry) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, entry := range entries {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s - %s\n", album, entry.Title))
		}
		sb.WriteString(entry.Path + "\n")
	}

	return sb.String()
}

func (p *PlaylistCreator) createPLS(entries []PlaylistEntry) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, entry := range entries {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, entry.Path))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, entry.Title))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(entries)))
	sb.WriteString("Version=2\n")

	return sb.String()
}
