package model

// AudiobookRecord represents one audiobook discovered on the catalog page.
//
// A record carries everything the download pipeline needs for one item:
//   - Title for file naming and ID3 tagging
//   - CoverURL for downloading cover art
//   - AudioURL for downloading the MP3
//
// CoverURL and AudioURL may be empty when the catalog markup lacked a
// parseable cover style or the audio source could not be resolved. The
// extractor never emits a record with an empty Title; the title doubles
// as the on-disk folder and file stem, so it is the record's only
// identity.
//
// Records live for the duration of one pipeline pass and are not
// persisted anywhere. The filesystem is the only durable state.
//
// Example:
//
//	rec := &model.AudiobookRecord{
//	    Title:    "Story A",
//	    CoverURL: "https://example.com/covers/a.jpg",
//	    AudioURL: "https://example.com/audio/a.mp3",
//	}
//	target := model.NewDownloadTarget(rec.Title, "/audiobooks")
type AudiobookRecord struct {
	// Title is the display name of the audiobook, trimmed of
	// surrounding whitespace. Never empty.
	Title string

	// CoverURL is the cover artwork location. Empty when the catalog
	// element had no parseable background-image style.
	CoverURL string

	// AudioURL is the MP3 location. Empty when resolution of the
	// item's detail fragment failed.
	AudioURL string
}

// HasCover returns true if cover artwork is available for download.
func (r *AudiobookRecord) HasCover() bool {
	return r.CoverURL != ""
}

// HasAudio returns true if the playable asset was resolved.
func (r *AudiobookRecord) HasAudio() bool {
	return r.AudioURL != ""
}
