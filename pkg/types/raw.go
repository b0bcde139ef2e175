// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the reserves enrichment
// pipeline: raw reading records as fetched from the legacy reserves
// database, the canonical citation schema emitted for import, and the
// pipeline configuration.
package types

// Format classifies a raw reading record by its source table.
type Format int

const (
	FormatUnknown Format = iota
	FormatBook
	FormatEBook
	FormatArticle
	FormatExcerpt
	FormatAudio
	FormatVideo
	FormatWebsite
	FormatTrack
)

func (f Format) String() string {
	switch f {
	case FormatBook:
		return "book"
	case FormatEBook:
		return "ebook"
	case FormatArticle:
		return "article"
	case FormatExcerpt:
		return "excerpt"
	case FormatAudio:
		return "audio"
	case FormatVideo:
		return "video"
	case FormatWebsite:
		return "website"
	case FormatTrack:
		return "track"
	default:
		return "unknown"
	}
}

// ParseFormat maps a source-table name to a Format. Unrecognized names
// return FormatUnknown.
func ParseFormat(name string) Format {
	switch name {
	case "book", "books":
		return FormatBook
	case "ebook", "ebooks":
		return FormatEBook
	case "article", "articles":
		return FormatArticle
	case "excerpt", "excerpts":
		return FormatExcerpt
	case "audio":
		return FormatAudio
	case "video", "videos":
		return FormatVideo
	case "website", "websites":
		return FormatWebsite
	case "track", "tracks":
		return FormatTrack
	default:
		return FormatUnknown
	}
}

// IsStreamingMedia reports whether the format may carry a raw source URL
// pointing at the streaming server. Print formats never do.
func (f Format) IsStreamingMedia() bool {
	switch f {
	case FormatAudio, FormatVideo, FormatWebsite, FormatTrack:
		return true
	default:
		return false
	}
}

// RawReadingRecord is one as-fetched row from a legacy reserves source
// table. The field set varies by source table, so the record is a flat
// key/value map with accessors for the handful of keys every table shares.
// Records are read-only once handed to the pipeline; mappers copy values
// out rather than rewrite them in place.
type RawReadingRecord map[string]string

// Field returns the named field, or the empty string when the source row
// does not carry it. Absent keys are "not available", never an error.
func (r RawReadingRecord) Field(key string) string {
	return r[key]
}

// RequestID returns the reserves request identifier, the primary join key
// across the legacy tables.
func (r RawReadingRecord) RequestID() string {
	return r["requestid"]
}

// LibraryNote returns the free-text staff note carried on the source row.
func (r RawReadingRecord) LibraryNote() string {
	return r["facnotes"]
}

// OpenURL returns the proxy-wrapped bibliographic reference query, when
// the source row has one.
func (r RawReadingRecord) OpenURL() string {
	return r["sfxlink"]
}
