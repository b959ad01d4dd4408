// Package catalog extracts audiobook records from the catalog site's
// HTML pages.
//
// The package handles two main use cases:
//
//  1. Walking the catalog listing page and producing a record per item
//  2. Resolving an item's data-id to the concrete MP3 URL via its
//     detail fragment
//
// # Extraction
//
//	resolver := catalog.NewResolver(client, settings.DetailURLTemplate, log)
//	extractor := catalog.NewExtractor(resolver, log)
//
//	doc, _ := goquery.NewDocumentFromReader(bytes.NewReader(page))
//	records := extractor.Extract(ctx, doc)
//
// # Markup expectations
//
// Catalog entries are div elements whose class attribute contains the
// token "audiobook" (word-boundary match, so "audiobooks-wrapper" is
// not an entry). Each entry carries:
//
//   - a data-id attribute identifying the item
//   - a nested div.title with the display name
//   - a nested div.cover.lazyBackgroundNone whose inline style holds
//     the cover URL in a background-image declaration
//
// The detail fragment for an item contains an HTML5 audio player; the
// MP3 URL is the src of its source element with type audio/mpeg.
//
// Malformed entries are skipped with a warning and never abort
// extraction of the remaining entries.
package catalog
