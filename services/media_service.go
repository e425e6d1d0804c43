package services

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/priyanshusingh1234/spell/config"
)

// MediaService is the filesystem-backed store for uploaded images.
// Files are addressed by generated names only; callers never hand it a
// client-supplied path.
type MediaService interface {
	SaveUpload(fileHeader *multipart.FileHeader, filename string) error
	Delete(filename string) error
	Exists(filename string) bool
	Path(filename string) string
}

type mediaService struct {
	Config *config.Config
	root   string
}

func NewMediaService(conf *config.Config) (MediaService, error) {
	root := conf.UploadDir
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, errors.Wrap(err, "could not create upload directory")
	}
	return &mediaService{Config: conf, root: root}, nil
}

func (m *mediaService) SaveUpload(fileHeader *multipart.FileHeader, filename string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "could not open uploaded file")
	}
	defer src.Close()

	dst, err := os.Create(m.Path(filename))
	if err != nil {
		return errors.Wrap(err, "could not create media file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrap(err, "could not write media file")
	}
	return nil
}

func (m *mediaService) Delete(filename string) error {
	if filename == "" {
		return nil
	}
	if err := os.Remove(m.Path(filename)); err != nil {
		return errors.Wrap(err, "could not delete media file")
	}
	return nil
}

func (m *mediaService) Exists(filename string) bool {
	if filename == "" {
		return false
	}
	_, err := os.Stat(m.Path(filename))
	return err == nil
}

// Path resolves a stored filename inside the media root. filepath.Base
// keeps lookups from escaping the upload directory.
func (m *mediaService) Path(filename string) string {
	return filepath.Join(m.root, filepath.Base(filename))
}

// uniqueAvatarName names an avatar by a fresh uuid plus the original
// extension.
func uniqueAvatarName(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}

// uniqueThumbnailName keeps the original base name and splices in a
// fresh uuid before the extension.
func uniqueThumbnailName(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	return base + uuid.NewString() + ext
}

// deleteQuietly removes a stale file after the owning record has
// already moved on. Failure is logged, never fatal.
func deleteQuietly(media MediaService, filename string) {
	if filename == "" {
		return
	}
	if err := media.Delete(filename); err != nil {
		log.Printf("error deleting old media file %s: %v", filename, err)
	}
}
