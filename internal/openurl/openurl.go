// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openurl parses and rewrites proxy-wrapped bibliographic query
// strings. Legacy reserves rows carry reference links in OpenURL form,
// usually wrapped behind a login proxy redirect. The translator exposes
// the query parameters as a field map for backfilling citation fields, and
// rewrites the whole query into a canonical resolver link that stays
// usable after the proxy host is retired.
package openurl

import (
	"net/url"
	"strings"
)

// NoOpenURL is returned by a Translator when the source row carries no
// reference query at all.
const NoOpenURL = "no openurl found"

// Fields maps OpenURL query-parameter names to their values. Absent keys
// mean "not available", never an error.
type Fields url.Values

// Get returns the first value for the named parameter, or "" when absent.
func (f Fields) Get(key string) string {
	return url.Values(f).Get(key)
}

// StartPage returns the spage parameter's first value, or "".
func (f Fields) StartPage() string {
	return f.Get("spage")
}

// EndPage returns the epage parameter's first value, or "".
func (f Fields) EndPage() string {
	return f.Get("epage")
}

// Translator parses reference URLs against a fixed set of proxy prefixes
// and a canonical resolver base endpoint.
type Translator struct {
	// proxyPrefixes are login/redirect wrappers stripped before parsing.
	proxyPrefixes []string

	// resolverBase is the canonical endpoint prepended by OutboundLink.
	resolverBase string
}

// NewTranslator builds a Translator. The resolver base should end with its
// own query introducer (a trailing "?"); OutboundLink joins the re-encoded
// parameters with "&".
func NewTranslator(resolverBase string, proxyPrefixes []string) *Translator {
	return &Translator{
		proxyPrefixes: proxyPrefixes,
		resolverBase:  resolverBase,
	}
}

// Parse extracts the query parameters from a reference URL. It fails
// softly: empty input, or a URL with no query component, yields an empty
// field map. A recognized proxy wrapper prefix is stripped before the URL
// is split on its first "?".
func (t *Translator) Parse(rawURL string) Fields {
	rawURL = t.stripProxy(rawURL)
	if rawURL == "" {
		return Fields{}
	}

	_, query, found := strings.Cut(rawURL, "?")
	if !found {
		return Fields{}
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return Fields{}
	}
	return Fields(values)
}

// OutboundLink rewrites a reference URL into a stable resolver link,
// independent of the original proxy host. Empty input returns the
// NoOpenURL sentinel. A "url" parameter is dropped before re-encoding: it
// can leak an internal redirect target. Commas are left unescaped for
// readability.
func (t *Translator) OutboundLink(rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return NoOpenURL
	}

	fields := t.Parse(rawURL)
	values := url.Values(fields)
	values.Del("url")

	encoded := values.Encode()
	encoded = strings.ReplaceAll(encoded, "%2C", ",")

	return t.resolverBase + "&" + encoded
}

// stripProxy removes a recognized login-wrapper prefix, if present.
func (t *Translator) stripProxy(rawURL string) string {
	for _, prefix := range t.proxyPrefixes {
		if strings.HasPrefix(rawURL, prefix) {
			return strings.TrimPrefix(rawURL, prefix)
		}
	}
	return rawURL
}
