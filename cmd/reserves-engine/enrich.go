// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/meshlib/reserves-engine/internal/cdl"
	"github.com/meshlib/reserves-engine/internal/export"
	"github.com/meshlib/reserves-engine/internal/ingest"
	"github.com/meshlib/reserves-engine/internal/mapper"
	"github.com/meshlib/reserves-engine/internal/openurl"
	"github.com/meshlib/reserves-engine/internal/pdfarchive"
	"github.com/meshlib/reserves-engine/pkg/types"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich course reading records into the import file",
	Long: `Enrich reads per-course raw record files, maps every record into the
canonical citation schema, resolves the best full-text link per citation,
and writes the tab-separated import file.

Rows without usable data are kept in the output, flagged with the no-data
sentinel and an empty external system id, so staff see every gap.`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().String("records-dir", "records", "directory of per-course YAML record files")
	enrichCmd.Flags().String("db", "reserves.db", "SQLite snapshot with the CDL catalog and PDF archive index")
	enrichCmd.Flags().String("out", "import.tsv", "output import file")

	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	recordsDir, _ := cmd.Flags().GetString("records-dir")
	dbPath, _ := cmd.Flags().GetString("db")
	outPath, _ := cmd.Flags().GetString("out")
	cfg := enrichConfig()
	ctx := context.Background()

	catalog, err := cdl.LoadCatalog(ctx, dbPath, cfg.CDLItemTemplate)
	if err != nil {
		return err
	}
	archive, err := pdfarchive.LoadIndex(ctx, dbPath, cfg.PDFLinkTemplate)
	if err != nil {
		return err
	}
	translator := openurl.NewTranslator(cfg.OpenURLBase, cfg.ProxyPrefixes)
	m := mapper.New(catalog, archive, translator, cfg)

	courses, err := ingest.ReadCoursesDir(recordsDir)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		return fmt.Errorf("no course files found in %s", recordsDir)
	}

	var citations []types.CanonicalCitation
	var summary enrichSummary
	for _, course := range courses {
		records, skipped := course.CourseRecords()
		for _, name := range skipped {
			fmt.Fprintf(os.Stderr, "warning: %s: unrecognized record table %q skipped\n", course.CourseCode, name)
		}

		mapped := m.MapCourse(records, course.Context())
		citations = append(citations, mapped...)
		summary.add(mapped)
	}

	if err := export.WriteFile(outPath, citations); err != nil {
		return err
	}

	summary.print(len(courses), outPath)
	return nil
}

// enrichSummary tallies citations by import status for the run report.
type enrichSummary struct {
	ready  int
	review int
	noData int
}

func (s *enrichSummary) add(citations []types.CanonicalCitation) {
	for _, c := range citations {
		switch c.Status {
		case types.StatusNeedsReview:
			s.review++
		case types.StatusNoData:
			s.noData++
		default:
			s.ready++
		}
	}
}

func (s *enrichSummary) print(courses int, outPath string) {
	total := s.ready + s.review + s.noData
	fmt.Printf("Enriched %d citations across %d courses -> %s\n", total, courses, outPath)
	fmt.Printf("  ready for import: %d\n", s.ready)
	if s.review > 0 {
		color.Yellow("  needs review:     %d", s.review)
	}
	if s.noData > 0 {
		color.Red("  no data found:    %d", s.noData)
	}
}
