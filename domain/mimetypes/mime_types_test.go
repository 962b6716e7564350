package mimetypes

import (
	"testing"
	"zenchat/domain"
	"zenchat/errors"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"PNG", "image/png", ImagePNG, true},
		{"JPEG", "image/jpeg", ImageJPEG, true},
		{"WebM with codecs", "video/webm; codecs=vp9", VideoWebM, true},
		{"Mismatch", "image/png", ImageGIF, false},
		{"Invalid MIME", "not a mime", ImagePNG, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			if ok != tt.want {
				t.Errorf("Matches(%q, %q) = %v; want %v", tt.detected, tt.expected, ok, tt.want)
			}
		})
	}
}

func TestContentTypeOf(t *testing.T) {
	req := require.New(t)

	contentType, err := ContentTypeOf("image/png")
	req.NoError(err)
	req.Equal(domain.ImageContent, contentType)

	contentType, err = ContentTypeOf("video/mp4")
	req.NoError(err)
	req.Equal(domain.VideoContent, contentType)

	for _, detected := range []string{"text/plain; charset=utf-8", "application/pdf", "", "not a mime"} {
		_, err = ContentTypeOf(detected)
		req.ErrorIs(err, errors.ErrUnsupportedMedia, detected)
	}
}
