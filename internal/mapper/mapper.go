// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapper transforms raw reading records into canonical citations.
// One mapping method exists per source format; each pulls what it can from
// the format's own field set, normalizes titles and authors, gathers link
// candidates from the PDF archive and the digital-library catalog, and
// hands the candidates to the resolver. Raw records are never mutated;
// every mapping builds a fresh citation.
package mapper

import (
	"strings"

	"github.com/meshlib/reserves-engine/internal/cdl"
	"github.com/meshlib/reserves-engine/internal/compose"
	"github.com/meshlib/reserves-engine/internal/normalize"
	"github.com/meshlib/reserves-engine/internal/openurl"
	"github.com/meshlib/reserves-engine/internal/pdfarchive"
	"github.com/meshlib/reserves-engine/internal/resolve"
	"github.com/meshlib/reserves-engine/pkg/types"
)

// Secondary-type tags. Best-effort format guesses for the import schema,
// not authoritative metadata. Excerpts load as book chapters and share the
// book tag; the "(EXCERPT) " title prefix carries the distinction.
const (
	typeBook    = "BK"
	typeEBook   = "EBOOK"
	typeArticle = "ARTICLE"
	typeAudio   = "AUDIO"
	typeVideo   = "VIDEO"
	typeWebsite = "WEBSITE"
)

// AuthorNotFound is emitted when an excerpt row has no author in either
// the excerpt-level or the book-level field pair.
const AuthorNotFound = "author_not_found"

// CourseContext identifies the course a batch of records belongs to.
type CourseContext struct {
	// CourseCode is the catalog course code (e.g. "HIST 1502").
	CourseCode string

	// SectionID is the matched section identifier.
	SectionID string

	// CourseTitle is the course's display title.
	CourseTitle string

	// ReadingListName names the target reading list. Defaults to
	// "<coursecode> <section>" when the matching stage left it empty.
	ReadingListName string
}

// listName returns the reading-list name, defaulted from the course code
// and section.
func (cc CourseContext) listName() string {
	if cc.ReadingListName != "" {
		return cc.ReadingListName
	}
	return strings.TrimSpace(cc.CourseCode + " " + cc.SectionID)
}

// CourseRecords holds the per-format raw record lists the matching stage
// fetched for one course.
type CourseRecords map[types.Format][]types.RawReadingRecord

// mapOrder fixes the emission order across formats so output is
// deterministic run to run.
var mapOrder = []types.Format{
	types.FormatBook,
	types.FormatEBook,
	types.FormatArticle,
	types.FormatExcerpt,
	types.FormatAudio,
	types.FormatVideo,
	types.FormatWebsite,
	types.FormatTrack,
}

// Mapper maps raw reading records into canonical citations using the
// injected enrichment collaborators.
type Mapper struct {
	catalog    *cdl.Catalog
	archive    *pdfarchive.Index
	translator *openurl.Translator
	cfg        types.EnrichConfig
}

// New builds a Mapper. catalog and archive may be empty but not nil;
// an empty catalog simply never matches.
func New(catalog *cdl.Catalog, archive *pdfarchive.Index, translator *openurl.Translator, cfg types.EnrichConfig) *Mapper {
	return &Mapper{
		catalog:    catalog,
		archive:    archive,
		translator: translator,
		cfg:        cfg,
	}
}

// MapCourse maps every raw record fetched for a course, in fixed format
// order. A course with no records at all yields a single placeholder row
// flagged with the no-data sentinel so staff see the gap in the output
// file. A record that cannot be mapped becomes a flagged row; it never
// aborts the batch.
func (m *Mapper) MapCourse(records CourseRecords, course CourseContext) []types.CanonicalCitation {
	var citations []types.CanonicalCitation

	for _, format := range mapOrder {
		for _, raw := range records[format] {
			citations = append(citations, m.Map(format, raw, course))
		}
	}

	if len(citations) == 0 {
		citations = append(citations, m.placeholder(course))
	}
	return citations
}

// Map dispatches a single record to its format mapper. Unknown formats
// produce a placeholder row rather than an error; the source tables
// occasionally grow rows with unrecognized type tags.
func (m *Mapper) Map(format types.Format, raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	switch format {
	case types.FormatBook:
		return m.Book(raw, course)
	case types.FormatEBook:
		return m.EBook(raw, course)
	case types.FormatArticle:
		return m.Article(raw, course)
	case types.FormatExcerpt:
		return m.Excerpt(raw, course)
	case types.FormatAudio:
		return m.Audio(raw, course)
	case types.FormatVideo:
		return m.Video(raw, course)
	case types.FormatWebsite:
		return m.Website(raw, course)
	case types.FormatTrack:
		return m.Track(raw, course)
	default:
		return m.placeholder(course)
	}
}

// placeholder builds the flagged row emitted when a course has no usable
// records. ExternalSystemID stays empty, which both excludes the row from
// auto-import and triggers the no-data sentinel.
func (m *Mapper) placeholder(course CourseContext) types.CanonicalCitation {
	c := types.CanonicalCitation{
		CourseCode:      course.CourseCode,
		SectionID:       course.SectionID,
		ReadingListName: course.listName(),
		Title:           normalize.CleanTitle(""),
	}
	c.StaffNote = compose.Note(compose.NoteInput{})
	c.Status = compose.StatusOf(c)
	return c
}

// draft carries a partially mapped citation plus the link candidates
// gathered for it, before resolution and note composition.
type draft struct {
	citation types.CanonicalCitation
	cdlNote  string
	rawURL   string
}

// finish runs the shared tail of every format mapping: archive lookup,
// source-slot assignment, link resolution, note composition, and status
// derivation.
func (m *Mapper) finish(d draft, format types.Format, raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	c := d.citation
	c.CourseCode = course.CourseCode
	c.SectionID = course.SectionID
	c.ReadingListName = course.listName()
	c.ExternalSystemID = raw.RequestID()

	pdfLink, pdfFound := m.archive.Link(raw.RequestID())
	openURLLink := m.translator.OutboundLink(raw.OpenURL())

	c.Source1 = d.cdlNote
	if pdfFound {
		c.Source2 = pdfLink
	}
	c.Source3 = d.rawURL
	if openURLLink != openurl.NoOpenURL {
		c.Source4 = openURLLink
	}

	c.Link = resolve.Resolve(resolve.Candidates{
		PDFLink:  pdfLink,
		PDFFound: pdfFound,
		CDLNote:  d.cdlNote,
		RawURL:   d.rawURL,
		Format:   format,
	}, m.cfg.StreamingDomain)

	c.StaffNote = compose.Note(compose.NoteInput{
		CDLNote:          d.cdlNote,
		RawURL:           d.rawURL,
		OpenURLLink:      openURLLink,
		ExternalSystemID: c.ExternalSystemID,
		CarriedNote:      raw.LibraryNote(),
	})
	c.Status = compose.StatusOf(c)
	return c
}

// pages returns the start and end page, preferring the direct fields and
// falling back to the parsed OpenURL parameters.
func (m *Mapper) pages(raw types.RawReadingRecord) (string, string) {
	start := strings.TrimSpace(raw.Field("spage"))
	end := strings.TrimSpace(raw.Field("epage"))
	if start != "" || end != "" {
		return start, end
	}
	fields := m.translator.Parse(raw.OpenURL())
	return fields.StartPage(), fields.EndPage()
}

// cleanOptional cleans a title-like field but keeps absent values empty
// instead of the no-title sentinel; only the citation title itself
// carries the sentinel.
func cleanOptional(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return normalize.CleanTitle(s)
}

// joinName joins a surname/forename field pair into "Last, First" form,
// tolerating either half being absent.
func joinName(last, first string) string {
	last = strings.TrimSpace(last)
	first = strings.TrimSpace(first)
	switch {
	case last == "":
		return first
	case first == "":
		return last
	default:
		return last + ", " + first
	}
}
