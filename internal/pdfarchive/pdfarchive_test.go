// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfarchive

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

const testTemplate = "https://reserves.library.example.edu/pdf/%s/%s"

func testIndex() *Index {
	return NewIndex(map[string]Entry{
		"10542": {ArticleID: "881", PDFID: "p-4417", Filename: "sontag_on_photography.pdf"},
		"10543": {ArticleID: "882", PDFID: "p-4418", Filename: "berger_ways_of_seeing.pdf"},
	}, testTemplate)
}

func TestLink(t *testing.T) {
	ix := testIndex()

	tests := []struct {
		name      string
		requestID string
		want      string
		wantOK    bool
	}{
		{"indexed request", "10542", "https://reserves.library.example.edu/pdf/p-4417/sontag_on_photography.pdf", true},
		{"trims whitespace", " 10543 ", "https://reserves.library.example.edu/pdf/p-4418/berger_ways_of_seeing.pdf", true},
		{"unknown request", "99999", "", false},
		{"empty request", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ix.Link(tt.requestID)
			if ok != tt.wantOK {
				t.Fatalf("Link(%q) ok = %v, want %v", tt.requestID, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Link(%q) = %q, want %q", tt.requestID, got, tt.want)
			}
		})
	}
}

func TestNewIndexNilMap(t *testing.T) {
	ix := NewIndex(nil, testTemplate)
	if ix.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ix.Len())
	}
	if _, ok := ix.Link("10542"); ok {
		t.Error("Link() on empty index reported a hit")
	}
}

func TestLoadIndex(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reserves.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE pdf_archive (
		requestid TEXT PRIMARY KEY,
		article_id TEXT,
		pdf_id TEXT,
		filename TEXT
	)`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`INSERT INTO pdf_archive VALUES
		('10542', '881', 'p-4417', 'sontag_on_photography.pdf'),
		('10543', '882', 'p-4418', 'berger_ways_of_seeing.pdf')`)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	ix, err := LoadIndex(context.Background(), dbPath, testTemplate)
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if ix.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ix.Len())
	}
	link, ok := ix.Link("10542")
	if !ok {
		t.Fatal("Link(10542) not found after load")
	}
	want := "https://reserves.library.example.edu/pdf/p-4417/sontag_on_photography.pdf"
	if link != want {
		t.Errorf("Link(10542) = %q, want %q", link, want)
	}
}
