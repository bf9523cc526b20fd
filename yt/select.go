package yt

import (
	"strings"

	"github.com/kkdai/youtube/v2"
)

// SelectStream picks the first format matching the request in the order the
// library returned them. It returns nil when nothing matches.
func SelectStream(formats youtube.FormatList, req *Request, container string) *youtube.Format {
	match := func(f youtube.Format) bool {
		return Resolution(f.QualityLabel) == req.Resolution && Container(f.MimeType) == container
	}
	if req.AudioOnly {
		match = isAudioOnly
	}

	for i := range formats {
		if match(formats[i]) {
			return &formats[i]
		}
	}
	return nil
}

func isAudioOnly(f youtube.Format) bool {
	return strings.HasPrefix(f.MimeType, "audio/")
}

// Resolution strips frame rate and HDR suffixes from a quality label,
// "1080p60 HDR" gives "1080p". Labels without a "p" give "".
func Resolution(qualityLabel string) string {
	height, _, found := strings.Cut(qualityLabel, "p")
	if !found || height == "" {
		return ""
	}
	return height + "p"
}

// Container returns the subtype of a MIME type, "video/mp4; codecs=..." gives "mp4"
func Container(mimeType string) string {
	mediaType, _, _ := strings.Cut(mimeType, ";")
	_, subtype, found := strings.Cut(strings.TrimSpace(mediaType), "/")
	if !found {
		return ""
	}
	return strings.ToLower(subtype)
}
