// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapper

import (
	"github.com/meshlib/reserves-engine/internal/normalize"
	"github.com/meshlib/reserves-engine/pkg/types"
)

// Article maps a journal-article row. Articles carry the richest field
// set: journal title, DOI, ISSN, volume, issue, and pages, with the
// OpenURL parameters backfilling pages the source row lacks.
func (m *Mapper) Article(raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	title := normalize.CleanTitle(raw.Field("atitle"))
	start, end := m.pages(raw)

	d := draft{
		citation: types.CanonicalCitation{
			SecondaryType:  typeArticle,
			Title:          title,
			ContainerTitle: cleanOptional(raw.Field("title")),
			Author:         normalize.CleanAuthor(joinName(raw.Field("aulast"), raw.Field("aufirst"))),
			PubDate:        raw.Field("date"),
			DOI:            raw.Field("doi"),
			ISSN:           raw.Field("issn"),
			Volume:         raw.Field("volume"),
			Issue:          raw.Field("issue"),
			StartPage:      start,
			EndPage:        end,
		},
		cdlNote: m.articleCheck(title),
		rawURL:  raw.Field("art_url"),
	}
	return m.finish(d, types.FormatArticle, raw, course)
}

// articleCheck is the article-style digital-library probe: search the
// cleaned article title. Kept separate from bookCheck because the legacy
// tables hang article titles off a different field, and the two probes
// have diverged before.
func (m *Mapper) articleCheck(title string) string {
	if title == normalize.NoTitle {
		return m.catalog.SearchNote("")
	}
	return m.catalog.SearchNote(title)
}
