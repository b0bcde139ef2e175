// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapper

import (
	"github.com/meshlib/reserves-engine/internal/normalize"
	"github.com/meshlib/reserves-engine/pkg/types"
)

// Audio maps a streamed audio-reserve row. Media rows skip the
// digital-library probe; their raw URL is the only candidate besides an
// archived PDF, and the resolver trusts it only on the approved streaming
// host.
func (m *Mapper) Audio(raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	return m.media(raw, course, types.FormatAudio, typeAudio)
}

// Video maps a streamed video-reserve row.
func (m *Mapper) Video(raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	return m.media(raw, course, types.FormatVideo, typeVideo)
}

// Website maps a web-link row.
func (m *Mapper) Website(raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	return m.media(raw, course, types.FormatWebsite, typeWebsite)
}

// Track maps a single album track. The track title is the citation title;
// the album title rides along as the container.
func (m *Mapper) Track(raw types.RawReadingRecord, course CourseContext) types.CanonicalCitation {
	d := draft{
		citation: types.CanonicalCitation{
			SecondaryType:  typeAudio,
			Title:          normalize.CleanTitle(raw.Field("track_title")),
			ContainerTitle: cleanOptional(raw.Field("title")),
			Author:         normalize.CleanAuthor(raw.Field("artist")),
			PubDate:        raw.Field("date"),
		},
		rawURL: raw.Field("url"),
	}
	return m.finish(d, types.FormatTrack, raw, course)
}

func (m *Mapper) media(raw types.RawReadingRecord, course CourseContext, format types.Format, secondaryType string) types.CanonicalCitation {
	d := draft{
		citation: types.CanonicalCitation{
			SecondaryType: secondaryType,
			Title:         normalize.CleanTitle(raw.Field("title")),
			Author:        normalize.CleanAuthor(raw.Field("creator")),
			PubDate:       raw.Field("date"),
		},
		rawURL: raw.Field("url"),
	}
	return m.finish(d, format, raw, course)
}
