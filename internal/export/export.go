// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes canonical citations as the tab-separated import
// file the target platform consumes. The column list and its order are an
// external contract; never reorder them.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/meshlib/reserves-engine/pkg/types"
)

// Columns is the import schema's fixed, order-sensitive column list.
var Columns = []string{
	"coursecode",
	"section_id",
	"reading_list_name",
	"citation_secondary_type",
	"citation_title",
	"citation_journal_title",
	"citation_author",
	"citation_publication_date",
	"citation_doi",
	"citation_isbn",
	"citation_issn",
	"citation_volume",
	"citation_issue",
	"citation_start_page",
	"citation_end_page",
	"citation_source1",
	"citation_source2",
	"citation_source3",
	"citation_source4",
	"citation_link",
	"citation_note",
	"external_system_id",
}

// row flattens a citation into Columns order.
func row(c types.CanonicalCitation) []string {
	return []string{
		c.CourseCode,
		c.SectionID,
		c.ReadingListName,
		c.SecondaryType,
		c.Title,
		c.ContainerTitle,
		c.Author,
		c.PubDate,
		c.DOI,
		c.ISBN,
		c.ISSN,
		c.Volume,
		c.Issue,
		c.StartPage,
		c.EndPage,
		c.Source1,
		c.Source2,
		c.Source3,
		c.Source4,
		c.Link,
		c.StaffNote,
		c.ExternalSystemID,
	}
}

// WriteTSV writes the header row and one record per citation to w.
func WriteTSV(w io.Writer, citations []types.CanonicalCitation) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'

	if err := tsv.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range citations {
		if err := tsv.Write(row(c)); err != nil {
			return fmt.Errorf("writing citation %s: %w", c.ExternalSystemID, err)
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// WriteFile writes the import file at path, creating or truncating it.
func WriteFile(path string, citations []types.CanonicalCitation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := WriteTSV(f, citations); err != nil {
		return err
	}
	return f.Close()
}
