// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapper

import (
	"github.com/meshlib/reserves-engine/internal/normalize"
	"github.com/meshlib/reserves-engine/pkg/types"
)

// Book maps a physical-book reserves row. Books carry a single combined
// author field and an ISBN; the digital-library check runs on the cleaned
// title regardless of whether the row already links anywhere, and the
// resolver decides priority.
func (m *Mapper) Book(raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	title := normalize.CleanTitle(raw.Field("bk_title"))

	d := draft{
		citation: types.CanonicalCitation{
			SecondaryType: typeBook,
			Title:         title,
			Author:        normalize.CleanAuthor(raw.Field("bk_author")),
			PubDate:       raw.Field("date"),
			ISBN:          raw.Field("isbn"),
		},
		cdlNote: m.bookCheck(title),
	}
	return m.finish(d, types.FormatBook, raw, course)
}

// EBook maps an electronic-book row. EBooks use the dedicated book-author
// field pair and carry their own platform URL, which is kept as a source
// slot but never trusted as a display link.
func (m *Mapper) EBook(raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	title := normalize.CleanTitle(raw.Field("bk_title"))

	d := draft{
		citation: types.CanonicalCitation{
			SecondaryType: typeEBook,
			Title:         title,
			Author:        normalize.CleanAuthor(joinName(raw.Field("bk_aulast"), raw.Field("bk_aufirst"))),
			PubDate:       raw.Field("date"),
			ISBN:          raw.Field("isbn"),
		},
		cdlNote: m.bookCheck(title),
		rawURL:  raw.Field("ebook_url"),
	}
	return m.finish(d, types.FormatEBook, raw, course)
}

// bookCheck is the book-style digital-library probe: search the cleaned
// full title. The sentinel title never matches anything in the catalog,
// so no special-casing is needed.
func (m *Mapper) bookCheck(title string) string {
	if title == normalize.NoTitle {
		return m.catalog.SearchNote("")
	}
	return m.catalog.SearchNote(title)
}
