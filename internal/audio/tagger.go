package audio

import (
	"github.com/bogem/id3v2"
)

// TagEditAction defines how to handle individual ID3 tags.
//
// Each tag field can be configured independently to determine whether
// it should be modified, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the catalog.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for the frames this tool owns.
//
// Frames not listed here are never touched, so tags written by other
// tools survive a re-run.
//
// Example:
//
//	cfg := &audio.TagConfig{
//	    ModifyTags: true,
//	    Title:      audio.TagModify,      // TIT2 from the catalog title
//	    Album:      audio.TagModify,      // TALB from the configured album name
//	    Comments:   audio.TagEmpty,       // Clear any existing comments
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no text frames are modified.
	ModifyTags bool

	// Title controls the TIT2 (Title) frame.
	Title TagEditAction

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// Comments controls the COMM (Comments) frame.
	Comments TagEditAction
}

// DefaultTagConfig returns the default tag configuration: title and
// album taken from the catalog, comments left alone.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		Title:      TagModify,
		Album:      TagModify,
		Comments:   TagDoNotModify,
	}
}

// Tagger writes ID3 tags to downloaded audiobook MP3s.
//
// Tagging runs on every pipeline pass, including passes that skipped
// all downloads, so metadata stays current for files retrieved by
// earlier runs. The operation is idempotent: writing the same values
// twice leaves the same frames.
//
// Example:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.Tag(target.AudioPath, "Story A", "Kubus Storytel", artworkBytes)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// Tag writes title, album, and cover art frames to the MP3 at audioPath.
//
// A file without an existing ID3 header is an expected state (freshly
// downloaded MP3s have none) and starts from an empty tag set. Frames
// other than the configured ones are preserved.
//
// artwork, when non-nil, is embedded as the front-cover attached
// picture with MIME type image/jpeg. The MIME type is fixed regardless
// of the artwork's true encoding; downstream players accept this and
// changing it would alter output compatibility. Pass nil to leave any
// existing picture frames alone.
//
// Any I/O failure during open or save propagates to the caller.
func (t *Tagger) Tag(audioPath, title, album string, artwork []byte) error {
	tag, err := id3v2.Open(audioPath, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateTextFrames(tag, title, album)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateTextFrames updates text-based ID3 frames based on configuration.
func (t *Tagger) updateTextFrames(tag *id3v2.Tag, title, album string) {
	// Title (TIT2)
	switch t.config.Title {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(title)
	}

	// Album (TALB)
	switch t.config.Album {
	case TagEmpty:
		tag.SetAlbum("")
	case TagModify:
		tag.SetAlbum(album)
	}

	// Comments (COMM)
	if t.config.Comments == TagEmpty {
		tag.DeleteFrames(tag.CommonID("Comments"))
	}
}

// updateArtwork embeds cover art as the front-cover attached picture.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	// Replace any existing pictures so re-tagging stays idempotent.
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
