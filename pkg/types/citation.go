// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ImportStatus indicates whether a canonical citation is ready for the
// import load, needs staff review first, or carries no usable data at all.
type ImportStatus int

const (
	StatusReady ImportStatus = iota
	StatusNeedsReview
	StatusNoData
)

func (s ImportStatus) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusNeedsReview:
		return "needs-review"
	case StatusNoData:
		return "no-data"
	default:
		return "unknown"
	}
}

// CanonicalCitation is the normalized output record in the target
// platform's import schema. One citation is built per raw reading record;
// it is immutable once emitted.
type CanonicalCitation struct {
	// CourseCode is the course-catalog code (e.g. "HIST 1502").
	CourseCode string `json:"coursecode" yaml:"coursecode"`

	// SectionID is the course section identifier.
	SectionID string `json:"section_id" yaml:"section_id"`

	// ReadingListName is the target reading-list name for the course.
	ReadingListName string `json:"reading_list_name" yaml:"reading_list_name"`

	// SecondaryType is a best-effort format tag ("BK", "ARTICLE", ...),
	// not authoritative metadata.
	SecondaryType string `json:"citation_secondary_type" yaml:"citation_secondary_type"`

	// Title is the cleaned citation title. Excerpt titles carry an
	// "(EXCERPT) " prefix.
	Title string `json:"citation_title" yaml:"citation_title"`

	// ContainerTitle is the journal or book the cited work appears in.
	ContainerTitle string `json:"citation_journal_title" yaml:"citation_journal_title"`

	// Author is the cleaned author string.
	Author string `json:"citation_author" yaml:"citation_author"`

	// PubDate is the publication date as carried by the source row.
	PubDate string `json:"citation_publication_date" yaml:"citation_publication_date"`

	DOI  string `json:"citation_doi" yaml:"citation_doi"`
	ISBN string `json:"citation_isbn" yaml:"citation_isbn"`
	ISSN string `json:"citation_issn" yaml:"citation_issn"`

	Volume    string `json:"citation_volume" yaml:"citation_volume"`
	Issue     string `json:"citation_issue" yaml:"citation_issue"`
	StartPage string `json:"citation_start_page" yaml:"citation_start_page"`
	EndPage   string `json:"citation_end_page" yaml:"citation_end_page"`

	// Source1 through Source4 are ranked candidate links and notes
	// gathered during enrichment (CDL note, PDF archive link, raw source
	// URL, translated OpenURL).
	Source1 string `json:"citation_source1" yaml:"citation_source1"`
	Source2 string `json:"citation_source2" yaml:"citation_source2"`
	Source3 string `json:"citation_source3" yaml:"citation_source3"`
	Source4 string `json:"citation_source4" yaml:"citation_source4"`

	// Link is the single resolved display link, empty when no candidate won.
	Link string `json:"citation_link" yaml:"citation_link"`

	// StaffNote is the human-facing annotation composed from the
	// enrichment outcomes and any carried-over source note.
	StaffNote string `json:"citation_note" yaml:"citation_note"`

	// ExternalSystemID is the reserves request identifier. Empty means the
	// row is excluded from (or flagged in) the import.
	ExternalSystemID string `json:"external_system_id" yaml:"external_system_id"`

	// Status is the machine-readable import readiness flag. Derived; not
	// an import column.
	Status ImportStatus `json:"status" yaml:"status"`
}
