package mimetypes

import (
	"mime"
	"strings"
	"zenchat/domain"
	"zenchat/errors"
)

type MIME string

const (
	Unknown MIME = "unknown"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWebP MIME = "image/webp"

	VideoMP4       MIME = "video/mp4"
	VideoWebM      MIME = "video/webm"
	VideoQuickTime MIME = "video/quicktime"
)

// Matches reports whether a detected media type, parameters included,
// is the expected one.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// ContentTypeOf classifies an uploaded file by its sniffed media type.
// Only images and videos can be attached to messages and statuses.
func ContentTypeOf(detected string) (domain.ContentType, error) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return "", errors.ErrUnsupportedMedia
	}
	switch {
	case strings.HasPrefix(mt, "image/"):
		return domain.ImageContent, nil
	case strings.HasPrefix(mt, "video/"):
		return domain.VideoContent, nil
	default:
		return "", errors.ErrUnsupportedMedia
	}
}
