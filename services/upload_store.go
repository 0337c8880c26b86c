package services

import (
	"errors"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadBytes = 5 * 1024 * 1024
	maxImageWidth  = 1280
)

var ErrUploadTooLarge = errors.New("file exceeds 5MB limit")
var ErrUnsupportedImage = errors.New("unsupported image format")

// UploadStore keeps uploaded images on disk under a single directory and
// serves them under /uploads. Files are named with a uuid so replacing an
// image never reuses a path.
type UploadStore struct {
	Dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadStore{Dir: dir}, nil
}

// SaveImage decodes, downscales to a bounded width and re-encodes the upload,
// returning the public /uploads/... path.
func (u *UploadStore) SaveImage(r io.Reader, size int64, origName string) (string, error) {
	if size > maxUploadBytes {
		return "", ErrUploadTooLarge
	}

	img, err := imaging.Decode(io.LimitReader(r, maxUploadBytes), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrUnsupportedImage
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	ext := strings.ToLower(filepath.Ext(origName))
	if ext != ".png" {
		ext = ".jpg"
	}
	name := uuid.New().String() + ext
	full := filepath.Join(u.Dir, name)

	if err := imaging.Save(img, full, imaging.JPEGQuality(85)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// Remove deletes a previously stored file. Callers invoke it only after the
// row pointing at the replacement has been written; a failed delete just logs.
func (u *UploadStore) Remove(publicPath string) {
	name := path.Base(publicPath)
	if name == "." || name == "/" {
		return
	}
	if err := os.Remove(filepath.Join(u.Dir, name)); err != nil && !os.IsNotExist(err) {
		log.Println("failed to delete upload:", err)
	}
}
