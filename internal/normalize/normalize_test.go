// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "testing"

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", NoTitle},
		{"whitespace only", "   \n  ", NoTitle},
		{"trims and strips trailing period", "  A Title.  ", "A Title"},
		{"keeps inner colon", "Capital: A Critique", "Capital: A Critique"},
		{"strips trailing colon", "Chapter One:", "Chapter One"},
		{"collapses newlines", "The Long\nTitle", "The Long Title"},
		{"collapses double spaces", "The  Long   Title", "The Long Title"},
		{"straight quote pair", `"Quoted"`, "Quoted"},
		{"lone leading straight quote", `"Half quoted`, "Half quoted"},
		{"inner quoted phrase survives", `On "Liberty" and Power`, `On "Liberty" and Power`},
		{"smart quote pair", "“Quoted”", "Quoted"},
		{"lone leading smart quote", "“Half quoted", "Half quoted"},
		{"smart quotes mid-string survive", "Reading “The Waste Land” Today", "Reading “The Waste Land” Today"},
		{"excerpt marker with other text", "(EXCERPT) Rhizome", "Rhizome"},
		{"lone excerpt marker untouched", "(EXCERPT)", "(EXCERPT)"},
		{"trailing marker", "Rhizome (EXCERPT)", "Rhizome"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.in); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// CleanTitle must be idempotent: re-cleaning an already-clean title is a
// no-op. A second pass happens whenever a mapper is fed a record that was
// exported from a previous run.
func TestCleanTitleIdempotent(t *testing.T) {
	titles := []string{
		"  A Title.  ",
		`"Quoted"`,
		"“Quoted”",
		"(EXCERPT) Rhizome",
		"The Long\nTitle",
		"Capital: A Critique of Political Economy:",
		`On "Liberty" and Power`,
		"Discipline and Punish",
	}
	for _, title := range titles {
		once := CleanTitle(title)
		twice := CleanTitle(once)
		if once != twice {
			t.Errorf("CleanTitle not idempotent for %q: first %q, second %q", title, once, twice)
		}
	}
}

func TestCleanAuthor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"plain", "Smith", "Smith"},
		{"leading and trailing comma", ", Smith,", "Smith"},
		{"trailing comma only", "Smith, Jane,", "Smith, Jane"},
		{"lone comma", ",", ""},
		{"trimmed", "  Deleuze, Gilles  ", "Deleuze, Gilles"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanAuthor(tt.in); got != tt.want {
				t.Errorf("CleanAuthor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
