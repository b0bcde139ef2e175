// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapper

import (
	"github.com/meshlib/reserves-engine/internal/normalize"
	"github.com/meshlib/reserves-engine/pkg/types"
)

// Excerpt maps a scanned book-excerpt row. The cleaned chapter title gets
// an "(EXCERPT) " prefix so staff can tell a chapter scan from the whole
// book, and the author probe tries the excerpt-level field pair before
// falling back to the book-level pair.
func (m *Mapper) Excerpt(raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	title := normalize.CleanTitle(raw.Field("atitle"))
	start, end := m.pages(raw)

	d := draft{
		citation: types.CanonicalCitation{
			SecondaryType:  typeBook,
			Title:          "(EXCERPT) " + title,
			ContainerTitle: cleanOptional(raw.Field("title")),
			Author:         excerptAuthor(raw),
			PubDate:        raw.Field("date"),
			ISBN:           raw.Field("isbn"),
			StartPage:      start,
			EndPage:        end,
		},
		cdlNote: m.bookCheck(cleanOptional(raw.Field("title"))),
	}
	return m.finish(d, types.FormatExcerpt, raw, course)
}

// excerptAuthor probes the excerpt-level author pair, then the book-level
// pair. When both are blank after joining, the sentinel marks the row for
// staff rather than leaving the column silently empty.
func excerptAuthor(raw types.RawReadingRecord) string {
	pairs := [][2]string{
		{"aulast", "aufirst"},
		{"bk_aulast", "bk_aufirst"},
	}
	for _, pair := range pairs {
		if name := normalize.CleanAuthor(joinName(raw.Field(pair[0]), raw.Field(pair[1]))); name != "" {
			return name
		}
	}
	return AuthorNotFound
}
