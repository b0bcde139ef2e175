// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfarchive resolves reserves requests against the pre-indexed
// archive of scanned PDFs. The archive was built once from the legacy
// document store; each entry keys a scanned file by the reserves request
// identifier it was produced for.
package pdfarchive

import (
	"fmt"
	"strings"
)

// Entry describes one archived scanned PDF.
type Entry struct {
	// ArticleID is the legacy article row the scan belongs to.
	ArticleID string `json:"article_id" yaml:"article_id"`

	// PDFID is the archive's own identifier for the scan.
	PDFID string `json:"pdf_id" yaml:"pdf_id"`

	// Filename is the stored file's name inside the archive.
	Filename string `json:"filename" yaml:"filename"`
}

// Index maps request identifiers to archived scans. It is loaded once per
// run and read-only afterward.
type Index struct {
	entries      map[string]Entry
	linkTemplate string
}

// NewIndex builds an Index over a pre-loaded entry map. linkTemplate is
// expanded with the entry's pdf id and filename to produce download links.
func NewIndex(entries map[string]Entry, linkTemplate string) *Index {
	if entries == nil {
		entries = map[string]Entry{}
	}
	return &Index{entries: entries, linkTemplate: linkTemplate}
}

// Len returns the number of indexed requests.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Lookup returns the archive entry for a request identifier. The second
// return is false when the request has no archived scan; callers branch on
// it rather than on a sentinel string.
func (ix *Index) Lookup(requestID string) (Entry, bool) {
	e, ok := ix.entries[strings.TrimSpace(requestID)]
	return e, ok
}

// Link returns the download link for a request's archived scan, or false
// when the request is not indexed.
func (ix *Index) Link(requestID string) (string, bool) {
	e, ok := ix.Lookup(requestID)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(ix.linkTemplate, e.PDFID, e.Filename), true
}
