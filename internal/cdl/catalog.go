// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cdl matches citation titles against the controlled digital
// lending catalog. The catalog is a cached snapshot of every digitized
// item; matching is fuzzy because reserves titles are hand-keyed and
// rarely agree character-for-character with the catalog record.
//
// The catalog is loaded explicitly at startup and never refreshed during a
// run. That is acceptable for a short-lived batch job; a long-lived
// process would serve stale matches once the backing catalog changes, and
// should call Reload on whatever schedule staleness allows.
package cdl

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Score thresholds. The 80 cutoff and the 97 "likely" band were settled by
// eyeballing match quality on real reserves data; revisit with fresh data
// before tuning.
const (
	matchThreshold  = 80
	likelyThreshold = 97
)

// Note shapes emitted by FormatNote. The resolver and the note composer
// branch on these prefixes, so they are part of the package contract.
const (
	// NoMatchNote reports that nothing in the catalog scored above the
	// match threshold.
	NoMatchNote = "no CDL link found"

	// NoteLikelyPrefix starts a single-match note at high confidence.
	NoteLikelyPrefix = "CDL link likely: "

	// NotePossiblyPrefix starts a single-match note at moderate confidence.
	NotePossiblyPrefix = "CDL link possibly: "

	// NoteMultiplePrefix starts an ambiguous note listing every candidate.
	// Ambiguity is surfaced for a human to settle, never collapsed to a
	// best guess.
	NoteMultiplePrefix = "Multiple possible CDL links: "
)

// Item is one digitized work in the catalog.
type Item struct {
	// ID uniquely identifies the digitized copy.
	ID string `json:"id" yaml:"id"`

	// Title is the catalog title matched against.
	Title string `json:"title" yaml:"title"`

	// URL is the canonical item link surfaced in notes.
	URL string `json:"url" yaml:"url"`
}

// Match pairs a catalog item with its similarity score against a query
// title. Scores run 0-100.
type Match struct {
	Item  Item
	Score int
}

// Catalog holds the cached digital-library items.
type Catalog struct {
	items []Item
}

// NewCatalog builds a Catalog over a loaded item snapshot.
func NewCatalog(items []Item) *Catalog {
	return &Catalog{items: items}
}

// Len returns the number of cached items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Reload replaces the cached snapshot. The batch pipeline never calls
// this; it exists so a long-lived caller can make staleness bounded.
func (c *Catalog) Reload(items []Item) {
	c.items = items
}

// Search scores title against every catalog title and returns the items
// scoring above the match threshold, in catalog order. No secondary
// ranking is applied; note formatting depends on stable order. Empty input
// matches nothing.
func (c *Catalog) Search(title string) []Match {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	var matches []Match
	for _, item := range c.items {
		score := fuzzy.Ratio(title, item.Title)
		if score > matchThreshold {
			matches = append(matches, Match{Item: item, Score: score})
		}
	}
	return matches
}

// FormatNote renders a match list as the staff-facing CDL note. A single
// match reports its confidence band; multiple matches are listed for
// manual disambiguation.
func FormatNote(matches []Match) string {
	switch len(matches) {
	case 0:
		return NoMatchNote
	case 1:
		m := matches[0]
		if m.Score > likelyThreshold {
			return NoteLikelyPrefix + "<" + m.Item.URL + ">"
		}
		return NotePossiblyPrefix + "<" + m.Item.URL + ">"
	default:
		links := make([]string, len(matches))
		for i, m := range matches {
			links[i] = "<" + m.Item.URL + ">"
		}
		return NoteMultiplePrefix + strings.Join(links, ", ")
	}
}

// SearchNote is the common search-then-format path used by the format
// mappers.
func (c *Catalog) SearchNote(title string) string {
	return FormatNote(c.Search(title))
}

// SingleMatchURL extracts the item link from a single-match note. The
// second return is false for the no-match and multiple-match shapes, and
// for anything that is not a CDL note at all.
func SingleMatchURL(note string) (string, bool) {
	if !strings.HasPrefix(note, NoteLikelyPrefix) && !strings.HasPrefix(note, NotePossiblyPrefix) {
		return "", false
	}
	open := strings.Index(note, "<")
	closeIdx := strings.LastIndex(note, ">")
	if open < 0 || closeIdx <= open {
		return "", false
	}
	return note[open+1 : closeIdx], true
}

// IsAmbiguous reports whether a note lists multiple candidate items.
func IsAmbiguous(note string) bool {
	return strings.HasPrefix(note, NoteMultiplePrefix)
}
