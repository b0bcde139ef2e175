// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve picks the single display link for a citation from the
// competing full-text candidates gathered during enrichment. A locally
// archived PDF always beats an external reference, one confident
// digital-library match is next most trustworthy, and raw source URLs are
// trusted only for streaming-media formats on the allow-listed host. Raw
// scraped URLs for print formats are never surfaced.
package resolve

import (
	"net/url"
	"strings"

	"github.com/meshlib/reserves-engine/internal/cdl"
	"github.com/meshlib/reserves-engine/pkg/types"
)

// Candidates holds the per-citation link candidates a format mapper
// gathered before resolution.
type Candidates struct {
	// PDFLink is the archived-scan download link; PDFFound reports
	// whether the request was in the archive index.
	PDFLink  string
	PDFFound bool

	// CDLNote is the digital-library match note, in one of the cdl
	// package's note shapes.
	CDLNote string

	// RawURL is the source row's own full-text URL, when it has one.
	RawURL string

	// Format is the record's source format.
	Format types.Format
}

// strategy returns a winning link for the candidates, or "" to pass.
type strategy func(c Candidates, streamingDomain string) string

// chain is the fixed priority order. First non-empty answer wins; ties
// cannot happen.
var chain = []strategy{
	archivedPDF,
	confidentCDLMatch,
	allowListedStream,
}

// Resolve returns the winning display link, or "" when no candidate
// qualifies. streamingDomain is the single allow-listed host for raw
// media URLs.
func Resolve(c Candidates, streamingDomain string) string {
	for _, s := range chain {
		if link := s(c, streamingDomain); link != "" {
			return link
		}
	}
	return ""
}

// archivedPDF prefers the locally archived scan over anything external:
// it cannot rot or hit a paywall.
func archivedPDF(c Candidates, _ string) string {
	if c.PDFFound {
		return c.PDFLink
	}
	return ""
}

// confidentCDLMatch accepts a digital-library note only when it encodes
// exactly one match. No-match and multiple-match notes pass; ambiguity is
// a human's call.
func confidentCDLMatch(c Candidates, _ string) string {
	link, ok := cdl.SingleMatchURL(c.CDLNote)
	if !ok {
		return ""
	}
	return link
}

// allowListedStream surfaces the raw source URL for streaming-media
// formats when it points at the approved streaming host.
func allowListedStream(c Candidates, streamingDomain string) string {
	if !c.Format.IsStreamingMedia() || c.RawURL == "" || streamingDomain == "" {
		return ""
	}
	u, err := url.Parse(c.RawURL)
	if err != nil {
		return ""
	}
	if strings.EqualFold(u.Hostname(), streamingDomain) {
		return c.RawURL
	}
	return ""
}
