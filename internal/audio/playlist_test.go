package audio

import (
	"strings"
	"testing"
)

func testEntries() []PlaylistEntry {
	return []PlaylistEntry{
		{Title: "Story A", Path: "Story A/Story A.mp3"},
		{Title: "Story B", Path: "Story B/Story B.mp3"},
	}
}

func TestPlaylistCreator_M3U(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.Create("Kubus Storytel", testEntries())

	if strings.HasPrefix(content, "#EXTM3U") {
		t.Error("plain M3U should not start with #EXTM3U")
	}
	if !strings.Contains(content, "Story A/Story A.mp3") {
		t.Error("M3U should contain relative MP3 paths")
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.Create("Kubus Storytel", testEntries())

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Kubus Storytel - Story A") {
		t.Errorf("extended M3U missing EXTINF line:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.Create("Kubus Storytel", testEntries())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=Story A/Story A.mp3") {
		t.Error("PLS should contain File1 entry")
	}
	if !strings.Contains(content, "Title2=Story B") {
		t.Error("PLS should contain Title2 entry")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should count entries")
	}
}

func TestPlaylistCreator_Empty(t *testing.T) {
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.Create("Album", nil)

	if content != "#EXTM3U\n" {
		t.Errorf("empty extended M3U = %q", content)
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	tests := []struct {
		format PlaylistFormat
		want   string
	}{
		{FormatM3U, ".m3u"},
		{FormatPLS, ".pls"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
		})
	}
}
