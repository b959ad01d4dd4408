// Package model defines the core data structures used throughout
// the audiobook-downloader application.
//
// # AudiobookRecord
//
// AudiobookRecord represents one item discovered on the catalog page:
//
//	rec := &model.AudiobookRecord{Title: "Story A", CoverURL: coverURL, AudioURL: mp3URL}
//	if rec.HasAudio() {
//	    // download rec.AudioURL
//	}
//
// # DownloadTarget
//
// DownloadTarget computes the deterministic on-disk layout for a record:
//
//	t := model.NewDownloadTarget("Story A", "/audiobooks")
//	fmt.Println(t.FolderPath) // /audiobooks/Story A
//	fmt.Println(t.CoverPath)  // /audiobooks/Story A/cover.jpg
//	fmt.Println(t.AudioPath)  // /audiobooks/Story A/Story A.mp3
//
// Path existence is the pipeline's completion marker: files already
// present at their computed paths are skipped on later runs.
package model
