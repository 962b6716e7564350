//go:generate go run go.uber.org/mock/mockgen -source=disk.go -destination=../mocks/mock_media_store.go -package=mocks
package storage

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"zenchat/domain"
	"zenchat/domain/mimetypes"
	"zenchat/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
)

// MaxMediaSize bounds a single upload.
const MaxMediaSize = 50 << 20

// Media is an uploaded file as stored on disk.
type Media struct {
	URL         string
	ContentType domain.ContentType
	MimeType    string
	Size        int64
}

type IMediaStore interface {
	Save(r io.Reader) (Media, error)
	Delete(url string) error
}

// MediaStore keeps uploaded images and videos in a local folder served
// under baseURL.
type MediaStore struct {
	dir     string
	baseURL string
	log     *slog.Logger
}

func NewMediaStore(dir, baseURL string, log *slog.Logger) (*MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media folder: %w", err)
	}
	return &MediaStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/"), log: log}, nil
}

func (s *MediaStore) Dir() string {
	return s.dir
}

// Save sniffs the content, rejects anything but images and videos, and
// writes the file under a fresh ULID name.
func (s *MediaStore) Save(r io.Reader) (Media, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, MaxMediaSize+1))
	if err != nil {
		return Media{}, fmt.Errorf("reading upload: %w", err)
	}
	if n > MaxMediaSize {
		return Media{}, fmt.Errorf("%w: upload exceeds %d bytes", errors.ErrInvalidRequest, MaxMediaSize)
	}

	detected := mimetype.Detect(buf.Bytes())
	contentType, err := mimetypes.ContentTypeOf(detected.String())
	if err != nil {
		s.log.Debug("Upload rejected", "mime", detected.String())
		return Media{}, err
	}

	name := ulid.Make().String() + detected.Extension()
	if err := os.WriteFile(filepath.Join(s.dir, name), buf.Bytes(), 0o644); err != nil {
		return Media{}, fmt.Errorf("writing media: %w", err)
	}
	return Media{
		URL:         s.baseURL + "/" + name,
		ContentType: contentType,
		MimeType:    detected.String(),
		Size:        n,
	}, nil
}

// Delete removes a file previously returned by Save. Unknown urls are ignored.
func (s *MediaStore) Delete(url string) error {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return nil
	}
	name := path.Base(url)
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
