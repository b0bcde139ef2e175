// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cdl

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func testItems() []Item {
	return []Item{
		{ID: "cdl-101", Title: "On Photography", URL: "https://cdl.library.example.edu/item/cdl-101"},
		{ID: "cdl-102", Title: "Ways of Seeing", URL: "https://cdl.library.example.edu/item/cdl-102"},
		{ID: "cdl-103", Title: "Camera Lucida: Reflections on Photography", URL: "https://cdl.library.example.edu/item/cdl-103"},
	}
}

func TestSearch(t *testing.T) {
	catalog := NewCatalog(testItems())

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"exact title", "On Photography", []string{"cdl-101"}},
		{"near match", "On Photography.", []string{"cdl-101"}},
		{"no match", "A Thousand Plateaus", nil},
		{"empty query", "", nil},
		{"whitespace query", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := catalog.Search(tt.query)
			if len(matches) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) returned %d matches, want %d", tt.query, len(matches), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if matches[i].Item.ID != want {
					t.Errorf("match[%d].ID = %q, want %q", i, matches[i].Item.ID, want)
				}
			}
		})
	}
}

func TestSearchPreservesCatalogOrder(t *testing.T) {
	catalog := NewCatalog([]Item{
		{ID: "b", Title: "The History of Sexuality Volume Two"},
		{ID: "a", Title: "The History of Sexuality Volume One"},
	})

	matches := catalog.Search("The History of Sexuality Volume")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Item.ID != "b" || matches[1].Item.ID != "a" {
		t.Errorf("matches not in catalog order: %q, %q", matches[0].Item.ID, matches[1].Item.ID)
	}
}

func TestFormatNote(t *testing.T) {
	item1 := Item{ID: "cdl-101", URL: "https://cdl.library.example.edu/item/cdl-101"}
	item2 := Item{ID: "cdl-102", URL: "https://cdl.library.example.edu/item/cdl-102"}

	tests := []struct {
		name    string
		matches []Match
		want    string
	}{
		{"no matches", nil, NoMatchNote},
		{
			"single high confidence",
			[]Match{{Item: item1, Score: 98}},
			"CDL link likely: <https://cdl.library.example.edu/item/cdl-101>",
		},
		{
			"single moderate confidence",
			[]Match{{Item: item1, Score: 85}},
			"CDL link possibly: <https://cdl.library.example.edu/item/cdl-101>",
		},
		{
			"score at likely boundary stays possibly",
			[]Match{{Item: item1, Score: 97}},
			"CDL link possibly: <https://cdl.library.example.edu/item/cdl-101>",
		},
		{
			"multiple matches",
			[]Match{{Item: item1, Score: 90}, {Item: item2, Score: 90}},
			"Multiple possible CDL links: <https://cdl.library.example.edu/item/cdl-101>, <https://cdl.library.example.edu/item/cdl-102>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNote(tt.matches); got != tt.want {
				t.Errorf("FormatNote() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSingleMatchURL(t *testing.T) {
	tests := []struct {
		name   string
		note   string
		want   string
		wantOK bool
	}{
		{"likely note", "CDL link likely: <https://cdl.example.edu/item/1>", "https://cdl.example.edu/item/1", true},
		{"possibly note", "CDL link possibly: <https://cdl.example.edu/item/2>", "https://cdl.example.edu/item/2", true},
		{"no match note", NoMatchNote, "", false},
		{"multiple note", "Multiple possible CDL links: <a>, <b>", "", false},
		{"arbitrary text", "see the stacks", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SingleMatchURL(tt.note)
			if ok != tt.wantOK {
				t.Fatalf("SingleMatchURL(%q) ok = %v, want %v", tt.note, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("SingleMatchURL(%q) = %q, want %q", tt.note, got, tt.want)
			}
		})
	}
}

func TestIsAmbiguous(t *testing.T) {
	if !IsAmbiguous(NoteMultiplePrefix + "<a>, <b>") {
		t.Error("multiple-match note not reported ambiguous")
	}
	if IsAmbiguous(NoMatchNote) || IsAmbiguous("CDL link likely: <a>") {
		t.Error("unambiguous note reported ambiguous")
	}
}

func TestSearchNote(t *testing.T) {
	catalog := NewCatalog(testItems())

	note := catalog.SearchNote("On Photography")
	if !strings.HasPrefix(note, NoteLikelyPrefix) {
		t.Errorf("SearchNote(exact title) = %q, want likely note", note)
	}

	if got := catalog.SearchNote("Pedagogy of the Oppressed"); got != NoMatchNote {
		t.Errorf("SearchNote(unmatched) = %q, want %q", got, NoMatchNote)
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	items := []Item{
		{ID: "cdl-101", Title: "On Photography"},
		{ID: "cdl-102", Title: "Ways of Seeing"},
	}

	if err := SaveItems(context.Background(), dbPath, items); err != nil {
		t.Fatalf("SaveItems: %v", err)
	}

	catalog, err := LoadCatalog(context.Background(), dbPath, "https://cdl.library.example.edu/item/%s")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if catalog.Len() != 2 {
		t.Errorf("Len() = %d, want 2", catalog.Len())
	}

	matches := catalog.Search("On Photography")
	if len(matches) != 1 {
		t.Fatalf("Search returned %d matches, want 1", len(matches))
	}
	if want := "https://cdl.library.example.edu/item/cdl-101"; matches[0].Item.URL != want {
		t.Errorf("item URL = %q, want %q", matches[0].Item.URL, want)
	}
}
