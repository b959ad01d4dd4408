// Package config provides configuration management for audiobook-downloader.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Request header sets for page and audio requests
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Catalog URL and detail template point at the Kubus Storytell site
//	// Downloads retried 3 times with exponential cooldown
//	// ID3 tagging enabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.AlbumName = "My Audiobooks"
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Catalog URL, detail-URL template, and album name
//   - Request headers for page and audio requests
//   - Retry count, cooldown, and chunk size
//   - Cover art conversion and resizing
//   - Playlist generation
//   - Logging level and format
package config
