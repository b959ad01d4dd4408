// Package audio provides audio file manipulation services including
// ID3 tag writing and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3 tags to downloaded MP3s:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.Tag(audioPath, "Story A", "Kubus Storytel", artworkBytes)
//
// The tagger owns three things:
//   - Title (TIT2) from the catalog entry
//   - Album (TALB) from configuration
//   - Cover art embedded as the front-cover picture frame
//
// Other frames in the file are left untouched, and tagging a file with
// no existing ID3 header is an expected, non-error state.
//
// # Playlist Generation
//
// Generate a library playlist over all downloaded audiobooks:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.Create(albumName, entries)
//	ioutils.WriteFile("/audiobooks/audiobooks.m3u", []byte(content))
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
package audio
