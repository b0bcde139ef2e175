// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openurl

import (
	"strings"
	"testing"
)

const (
	testBase   = "https://resolver.library.example.edu/openurl?"
	testProxy  = "https://login.revproxy.example.edu/login?url="
	wrappedURL = testProxy + "https://sfx.example.edu/sfx_local?sid=sfx&atitle=On+Photography&spage=607&epage=621"
)

func testTranslator() *Translator {
	return NewTranslator(testBase, []string{testProxy})
}

func TestParse(t *testing.T) {
	tr := testTranslator()

	tests := []struct {
		name      string
		rawURL    string
		wantEmpty bool
		wantSpage string
		wantEpage string
	}{
		{"empty input", "", true, "", ""},
		{"no query component", "https://sfx.example.edu/sfx_local", true, "", ""},
		{"proxy wrapped with pages", wrappedURL, false, "607", "621"},
		{
			"unwrapped with pages",
			"https://sfx.example.edu/sfx_local?spage=12&epage=19",
			false, "12", "19",
		},
		{
			"pages absent",
			"https://sfx.example.edu/sfx_local?atitle=Something",
			false, "", "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := tr.Parse(tt.rawURL)
			if tt.wantEmpty && len(fields) != 0 {
				t.Fatalf("Parse(%q) = %v, want empty map", tt.rawURL, fields)
			}
			if got := fields.StartPage(); got != tt.wantSpage {
				t.Errorf("StartPage() = %q, want %q", got, tt.wantSpage)
			}
			if got := fields.EndPage(); got != tt.wantEpage {
				t.Errorf("EndPage() = %q, want %q", got, tt.wantEpage)
			}
		})
	}
}

func TestParseProxyStripping(t *testing.T) {
	tr := testTranslator()

	fields := tr.Parse(wrappedURL)
	if got := fields.Get("atitle"); got != "On Photography" {
		t.Errorf("atitle = %q, want %q", got, "On Photography")
	}
}

func TestStartPageEmptyMap(t *testing.T) {
	if got := (Fields{}).StartPage(); got != "" {
		t.Errorf("StartPage() on empty map = %q, want \"\"", got)
	}
}

func TestOutboundLink(t *testing.T) {
	tr := testTranslator()

	t.Run("empty input returns sentinel", func(t *testing.T) {
		if got := tr.OutboundLink(""); got != NoOpenURL {
			t.Errorf("OutboundLink(\"\") = %q, want %q", got, NoOpenURL)
		}
	})

	t.Run("prepends resolver base", func(t *testing.T) {
		link := tr.OutboundLink(wrappedURL)
		if !strings.HasPrefix(link, testBase+"&") {
			t.Errorf("link %q does not start with resolver base", link)
		}
		if !strings.Contains(link, "spage=607") || !strings.Contains(link, "epage=621") {
			t.Errorf("link %q lost page parameters", link)
		}
	})

	t.Run("drops url parameter", func(t *testing.T) {
		link := tr.OutboundLink("https://sfx.example.edu/sfx?atitle=X&url=https%3A%2F%2Finternal.example.edu%2Fjump")
		if strings.Contains(link, "internal.example.edu") {
			t.Errorf("link %q leaks the internal redirect target", link)
		}
	})

	t.Run("commas stay unescaped", func(t *testing.T) {
		link := tr.OutboundLink("https://sfx.example.edu/sfx?aulast=Sontag,+Susan")
		if strings.Contains(link, "%2C") {
			t.Errorf("link %q escapes commas", link)
		}
		if !strings.Contains(link, "Sontag,") {
			t.Errorf("link %q lost the comma", link)
		}
	})
}
