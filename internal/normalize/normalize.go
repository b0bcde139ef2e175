// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize cleans title and author strings pulled from the legacy
// reserves tables. The source data mixes hand-keyed entries, OCR output,
// and copy-pasted catalog fields, so titles arrive with stray quotes,
// doubled spaces, and trailing punctuation. Cleaning is idempotent: a
// second pass is a no-op.
package normalize

import "strings"

// NoTitle is emitted when the source row carries no title at all. The
// import schema requires a non-empty title column, and the sentinel makes
// the gap visible to staff instead of producing a blank cell.
const NoTitle = "no-title"

// excerptMarker tags a reading that is a portion of a larger work.
const excerptMarker = "(EXCERPT)"

const (
	leftSmartQuote  = "“"
	rightSmartQuote = "”"
)

// CleanTitle canonicalizes a raw title string. Empty input returns the
// NoTitle sentinel. Otherwise it collapses internal whitespace, drops an
// excerpt marker that accompanies other text, strips one trailing colon or
// period, and removes a single enclosing pair of smart or straight double
// quotes. Quote stripping is count-gated so quotes around a legitimately
// quoted sub-phrase survive.
func CleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return NoTitle
	}

	title = collapseWhitespace(title)
	title = stripExcerptMarker(title)
	title = stripTrailingPunct(title)
	title = stripQuotePair(title, leftSmartQuote, rightSmartQuote)
	title = stripQuotePair(title, `"`, `"`)

	return strings.TrimSpace(title)
}

// CleanAuthor canonicalizes a raw author string: trims whitespace and
// drops a single leading and a single trailing comma. Empty input returns
// the empty string.
func CleanAuthor(raw string) string {
	author := strings.TrimSpace(raw)
	if author == "" {
		return ""
	}

	author = strings.TrimPrefix(author, ",")
	author = strings.TrimSpace(author)
	if strings.HasSuffix(author, ",") {
		author = author[:len(author)-1]
	}

	return strings.TrimSpace(author)
}

// collapseWhitespace folds internal newlines and doubled spaces into
// single spaces.
func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

// stripExcerptMarker removes the "(EXCERPT)" tag when the title has other
// text. A title that is nothing but the marker is left alone: stripping it
// would leave an empty title.
func stripExcerptMarker(s string) string {
	if !strings.Contains(s, excerptMarker) || strings.TrimSpace(s) == excerptMarker {
		return s
	}
	s = strings.ReplaceAll(s, excerptMarker, "")
	return collapseWhitespace(strings.TrimSpace(s))
}

// stripTrailingPunct drops one trailing colon or period.
func stripTrailingPunct(s string) string {
	if strings.HasSuffix(s, ":") || strings.HasSuffix(s, ".") {
		return strings.TrimSpace(s[:len(s)-1])
	}
	return s
}

// stripQuotePair removes a single enclosing quote pair, gated on quote
// counts. A pair is removed only when exactly one opening and one closing
// quote exist and the closing quote ends the string. Failing that, a lone
// leading quote with no counterpart anywhere else is dropped.
func stripQuotePair(s, opening, closing string) string {
	opens := strings.Count(s, opening)
	closes := strings.Count(s, closing)
	if opening == closing {
		// Straight quotes: the same rune opens and closes.
		if opens == 2 && strings.HasSuffix(s, closing) {
			return strings.TrimSpace(strings.Replace(s, opening, "", 2))
		}
		if opens == 1 && strings.HasPrefix(s, opening) {
			return strings.TrimSpace(s[len(opening):])
		}
		return s
	}
	if opens == 1 && closes == 1 && strings.HasSuffix(s, closing) {
		s = strings.Replace(s, opening, "", 1)
		s = strings.TrimSuffix(s, closing)
		return strings.TrimSpace(s)
	}
	if opens == 1 && closes == 0 && strings.HasPrefix(s, opening) {
		return strings.TrimSpace(s[len(opening):])
	}
	return s
}
