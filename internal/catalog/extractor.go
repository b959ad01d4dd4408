package catalog

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/handiism/audiobook-downloader/internal/logger"
	"github.com/handiism/audiobook-downloader/internal/model"
)

// audiobookClass matches class attributes containing the standalone
// token "audiobook". The word boundaries keep wrapper elements like
// class="audiobooks-wrapper" out while still matching compound tokens
// such as "audiobook-item".
var audiobookClass = regexp.MustCompile(`\baudiobook\b`)

// backgroundImage pulls the URL argument out of a CSS
// background-image declaration. The catalog site lazy-loads covers
// through inline styles, so this is the only place the cover URL
// appears. The match is deliberately tied to this exact property
// spelling and fails soft when the site changes it.
var backgroundImage = regexp.MustCompile(`background-image:\s*url\(([^)]+)\)`)

// Extractor walks a parsed catalog page and produces AudiobookRecords.
//
// For every candidate element the Extractor reads the data-id
// attribute, the trimmed text of the nested title element, the cover
// URL from the cover element's inline style, and asks the Resolver for
// the item's audio URL. Candidates missing a title or identifier are
// dropped with a warning; they never abort extraction of the rest.
//
// Example usage:
//
//	extractor := catalog.NewExtractor(resolver, log)
//
//	doc, _ := goquery.NewDocumentFromReader(bytes.NewReader(page))
//	records := extractor.Extract(ctx, doc)
//	for _, rec := range records {
//	    fmt.Println(rec.Title, rec.AudioURL)
//	}
type Extractor struct {
	resolver *Resolver
	log      *logger.Logger
}

// NewExtractor creates an Extractor that resolves audio URLs through
// the given Resolver.
func NewExtractor(resolver *Resolver, log *logger.Logger) *Extractor {
	return &Extractor{
		resolver: resolver,
		log:      log,
	}
}

// Extract produces one AudiobookRecord per well-formed catalog entry,
// in document order.
//
// Duplicate titles are not deduplicated here; the item processor's
// existence checks make the second occurrence a no-op on disk.
//
// A record is emitted only when both the title and the data-id
// attribute are present. Cover and audio URLs are best-effort and may
// be empty on the returned records.
func (e *Extractor) Extract(ctx context.Context, doc *goquery.Document) []*model.AudiobookRecord {
	var records []*model.AudiobookRecord

	doc.Find("div").Each(func(_ int, s *goquery.Selection) {
		class, ok := s.Attr("class")
		if !ok || !audiobookClass.MatchString(class) {
			return
		}

		dataID, hasID := s.Attr("data-id")
		title := strings.TrimSpace(s.Find("div.title").First().Text())

		coverURL := ExtractCoverURL(s.Find("div.cover.lazyBackgroundNone").First())
		if coverURL == "" {
			e.log.Warn("cover element missing or URL not in style attribute", "data_id", dataID)
		}

		var audioURL string
		if hasID && dataID != "" {
			audioURL = e.resolver.Resolve(ctx, dataID)
		}

		if title == "" || !hasID || dataID == "" {
			e.log.Warn("skipping audiobook with missing title or data-id", "data_id", dataID)
			return
		}

		records = append(records, &model.AudiobookRecord{
			Title:    title,
			CoverURL: coverURL,
			AudioURL: audioURL,
		})
	})

	e.log.Info("extracted audiobooks", "count", len(records))
	return records
}

// ExtractCoverURL reads the cover URL from a cover element's inline style.
//
// Given style text like:
//
//	background-image: url(https://example.com/cover.jpg)
//
// it returns "https://example.com/cover.jpg". An empty selection, a
// missing style attribute, or an unmatched pattern all yield the empty
// string; none of these are errors.
func ExtractCoverURL(cover *goquery.Selection) string {
	style, ok := cover.Attr("style")
	if !ok {
		return ""
	}

	match := backgroundImage.FindStringSubmatch(style)
	if match == nil {
		return ""
	}
	return match[1]
}
