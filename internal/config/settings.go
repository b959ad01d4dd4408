package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Source settings
	CatalogURL        string `json:"catalog_url"`
	DetailURLTemplate string `json:"detail_url_template"` // {id} is replaced with the item identifier
	AlbumName         string `json:"album_name"`

	// Request headers sent with catalog and detail-fragment requests
	Accept         string `json:"accept"`
	AcceptLanguage string `json:"accept_language"`
	UserAgent      string `json:"user_agent"`

	// Request headers sent with audio downloads
	AudioAccept    string `json:"audio_accept"`
	AudioUserAgent string `json:"audio_user_agent"`

	// Download settings
	DownloadsPath         string  `json:"downloads_path"`
	DownloadMaxRetries    int     `json:"download_max_retries"`
	DownloadRetryCooldown float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent float64 `json:"download_retry_exponent"`
	DownloadChunkSize     int     `json:"download_chunk_size"`

	// Cover art settings
	ConvertCoverToJPEG bool `json:"convert_cover_to_jpg"`
	ResizeCoverInTags  bool `json:"resize_cover_in_tags"`
	CoverInTagsMaxSize int  `json:"cover_in_tags_max_size"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist"`
	PlaylistFormat string `json:"playlist_format"` // m3u, pls
	M3UExtended    bool   `json:"m3u_extended"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`

	// Logging
	LogLevel  string `json:"log_level"`  // debug, info, warn, error
	LogFormat string `json:"log_format"` // json, text
}

// DefaultSettings returns settings with default values.
//
// The source defaults point at the Kubus Storytell catalog the tool
// was written for; the detail template's {id} placeholder receives the
// catalog item's data-id attribute.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		CatalogURL:        "https://kubus.pl/audiobooki/",
		DetailURLTemplate: "https://kubus.pl/?p={id}",
		AlbumName:         "Kubus Storytel",

		Accept:         "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
		AcceptLanguage: "pl-PL,pl;q=0.8",
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36",

		AudioAccept:    "audio/mpeg, audio/*; q=0.9",
		AudioUserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.85 Safari/537.36",

		DownloadsPath:         filepath.Join(homeDir, "Audiobooks"),
		DownloadMaxRetries:    3,
		DownloadRetryCooldown: 0.2,
		DownloadRetryExponent: 4.0,
		DownloadChunkSize:     8192,

		ConvertCoverToJPEG: false,
		ResizeCoverInTags:  false,
		CoverInTagsMaxSize: 1000,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		ModifyTags: true,

		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error; defaults are returned instead so the
// tool works without any configuration.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// PageHeaders returns the headers sent with catalog and detail requests.
func (s *Settings) PageHeaders() map[string]string {
	return map[string]string{
		"Accept":          s.Accept,
		"Accept-Language": s.AcceptLanguage,
		"User-Agent":      s.UserAgent,
	}
}

// AudioHeaders returns the headers sent with audio downloads.
//
// The audio endpoint is pickier than the catalog: it expects an audio
// Accept header, and the download User-Agent differs from the page one.
func (s *Settings) AudioHeaders() map[string]string {
	return map[string]string{
		"Accept":     s.AudioAccept,
		"User-Agent": s.AudioUserAgent,
	}
}
