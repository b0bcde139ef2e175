// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose builds the staff-facing annotation and the machine
// import-readiness flag for a canonical citation. The note aggregates the
// enrichment outcomes worth a human's attention; the status flag decides
// whether the row goes straight into the import load or to review.
package compose

import (
	"net/url"
	"strings"

	"github.com/meshlib/reserves-engine/internal/cdl"
	openurlpkg "github.com/meshlib/reserves-engine/internal/openurl"
	"github.com/meshlib/reserves-engine/pkg/types"
)

// NoDataSentinel flags a row with no usable citation content at all. The
// downstream import excludes these rows and routes them to staff review.
const NoDataSentinel = "NO-OCRA-BOOKS/ARTICLES/EXCERPTS-FOUND"

const (
	fullTextClause = "Possible full text link: "
	openURLClause  = "This link occasionally helps locate full text: "
)

// NoteInput carries the composer's raw material for one citation.
type NoteInput struct {
	// CDLNote is the digital-library match note.
	CDLNote string

	// RawURL is the source row's own full-text URL.
	RawURL string

	// OpenURLLink is the translated resolver link.
	OpenURLLink string

	// ExternalSystemID is the reserves request identifier; empty means
	// the matching stage found no source row.
	ExternalSystemID string

	// CarriedNote is pre-existing staff note text carried over from the
	// source row.
	CarriedNote string
}

// Note composes the staff annotation. Clauses are appended in fixed
// order: the CDL note (only the match-bearing shapes; the no-match note
// tells staff nothing), a full-text sentence around the raw URL, an
// OpenURL sentence when the translated link actually carries parameters,
// and finally any carried-over note. Every clause ends with a period;
// clauses are joined by single spaces. An empty result with no external
// id means the row had no data at all and gets the NoDataSentinel.
func Note(in NoteInput) string {
	var clauses []string

	if isMatchNote(in.CDLNote) {
		clauses = append(clauses, punctuate(in.CDLNote))
	}
	if in.RawURL != "" {
		clauses = append(clauses, punctuate(fullTextClause+in.RawURL))
	}
	if hasParameters(in.OpenURLLink) {
		clauses = append(clauses, punctuate(openURLClause+in.OpenURLLink))
	}
	if note := strings.TrimSpace(in.CarriedNote); note != "" {
		clauses = append(clauses, punctuate(note))
	}

	composed := strings.Join(clauses, " ")
	if composed == "" && in.ExternalSystemID == "" {
		return NoDataSentinel
	}
	return composed
}

// StatusOf derives the import-readiness flag for a composed citation.
// A row without an external system id carries no importable data. A row
// whose note lists multiple digital-library candidates needs a human to
// disambiguate before import. Everything else is ready.
func StatusOf(c types.CanonicalCitation) types.ImportStatus {
	if c.ExternalSystemID == "" {
		return types.StatusNoData
	}
	if cdl.IsAmbiguous(c.Source1) || cdl.IsAmbiguous(c.StaffNote) {
		return types.StatusNeedsReview
	}
	return types.StatusReady
}

// isMatchNote accepts the CDL note shapes that carry a candidate link.
// The no-match note is dropped: it adds nothing for staff. Ambiguous
// multi-match notes are kept so the ambiguity surfaces for a human.
func isMatchNote(note string) bool {
	return strings.HasPrefix(note, cdl.NoteLikelyPrefix) ||
		strings.HasPrefix(note, cdl.NotePossiblyPrefix) ||
		strings.HasPrefix(note, cdl.NoteMultiplePrefix)
}

// hasParameters reports whether a translated OpenURL link carries at
// least one query parameter. Parameter-less links resolve to the bare
// resolver page and only confuse staff.
func hasParameters(link string) bool {
	if link == "" || link == openurlpkg.NoOpenURL {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return false
	}
	for key, vals := range values {
		if key == "" {
			continue
		}
		for _, v := range vals {
			if v != "" {
				return true
			}
		}
	}
	return false
}

// punctuate appends a period unless the clause already ends with
// terminal punctuation.
func punctuate(clause string) string {
	clause = strings.TrimSpace(clause)
	switch {
	case clause == "":
		return clause
	case strings.HasSuffix(clause, "."),
		strings.HasSuffix(clause, "!"),
		strings.HasSuffix(clause, "?"):
		return clause
	default:
		return clause + "."
	}
}
