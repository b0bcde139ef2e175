// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfarchive

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadIndex reads the archived-PDF table from the reserves extract
// database and returns an in-memory Index. The table is written by the
// one-time archive crawl; this loader never modifies it.
func LoadIndex(ctx context.Context, dbPath, linkTemplate string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT requestid, article_id, pdf_id, filename FROM pdf_archive`)
	if err != nil {
		return nil, fmt.Errorf("querying pdf_archive: %w", err)
	}
	defer rows.Close()

	entries := map[string]Entry{}
	for rows.Next() {
		var requestID string
		var e Entry
		if err := rows.Scan(&requestID, &e.ArticleID, &e.PDFID, &e.Filename); err != nil {
			return nil, fmt.Errorf("scanning pdf_archive row: %w", err)
		}
		entries[requestID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading pdf_archive rows: %w", err)
	}

	return NewIndex(entries, linkTemplate), nil
}
