package catalog

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	httpclient "github.com/handiism/audiobook-downloader/internal/http"
	"github.com/handiism/audiobook-downloader/internal/logger"
)

// Resolver turns a catalog item identifier into a concrete audio URL.
//
// The catalog page never links MP3s directly. Each entry carries a
// data-id that, substituted into a detail-URL template, yields an HTML
// fragment containing an audio player. The Resolver fetches that
// fragment and extracts the MPEG source URL from it.
//
// Example usage:
//
//	resolver := catalog.NewResolver(client, "https://kubus.pl/?p={id}", log)
//	audioURL := resolver.Resolve(ctx, "42")
//	if audioURL == "" {
//	    // item could not be resolved; the record stays without audio
//	}
type Resolver struct {
	client   *httpclient.Client
	template string
	log      *logger.Logger
}

// NewResolver creates a Resolver using the given URL template.
//
// The template's {id} placeholder is replaced with the item identifier
// on every Resolve call.
func NewResolver(client *httpclient.Client, template string, log *logger.Logger) *Resolver {
	return &Resolver{
		client:   client,
		template: template,
		log:      log,
	}
}

// Resolve fetches the item's detail fragment and returns the MPEG
// audio source URL, or the empty string when resolution fails.
//
// Failures never propagate past this boundary: transport errors, parse
// errors, and a missing audio source element all log and return absent
// so the catalog pass keeps going.
func (r *Resolver) Resolve(ctx context.Context, id string) string {
	url := strings.ReplaceAll(r.template, "{id}", id)

	body, err := r.client.Get(ctx, url)
	if err != nil {
		r.log.Error("failed to fetch audio source", "url", url, "error", err)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		r.log.Error("failed to parse detail fragment", "url", url, "error", err)
		return ""
	}

	src, ok := doc.Find(`source[type="audio/mpeg"]`).First().Attr("src")
	if !ok {
		return ""
	}
	return src
}
