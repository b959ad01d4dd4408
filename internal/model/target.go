package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DownloadTarget holds the deterministic on-disk layout for one audiobook.
//
// All paths derive from the record title and a caller-supplied
// destination root:
//
//	<destination>/<title>/
//	<destination>/<title>/cover.jpg
//	<destination>/<title>/<title>.mp3
//
// Path existence IS the completion marker: a cover or audio file that
// already exists at its computed path is treated as already retrieved
// and skipped on later runs, with no separate manifest or status file.
// The pipeline deliberately trusts existence alone and performs no
// content verification.
type DownloadTarget struct {
	// Title is the sanitized title used as folder and file stem.
	Title string

	// FolderPath is the item's directory under the destination root.
	FolderPath string

	// CoverPath is the cover artwork file path.
	CoverPath string

	// AudioPath is the MP3 file path.
	AudioPath string
}

// CoverFileName is the fixed cover artwork filename inside each item folder.
const CoverFileName = "cover.jpg"

// NewDownloadTarget computes the target layout for a title under destRoot.
//
// The title is sanitized for cross-platform filename safety before any
// path is derived, so two titles that sanitize identically share a
// folder and deduplicate implicitly via the existence checks.
//
// Example:
//
//	t := NewDownloadTarget("Story A", "/audiobooks")
//	// t.FolderPath = "/audiobooks/Story A"
//	// t.CoverPath  = "/audiobooks/Story A/cover.jpg"
//	// t.AudioPath  = "/audiobooks/Story A/Story A.mp3"
func NewDownloadTarget(title, destRoot string) *DownloadTarget {
	name := sanitizeFileName(title)
	folder := filepath.Join(destRoot, name)

	return &DownloadTarget{
		Title:      name,
		FolderPath: folder,
		CoverPath:  filepath.Join(folder, CoverFileName),
		AudioPath:  filepath.Join(folder, name+".mp3"),
	}
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	return strings.TrimRight(name, " ")
}
