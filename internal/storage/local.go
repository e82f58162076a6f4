package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"billbook/pkg/utils"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Store persists uploaded image assets under stable filenames.
type Store interface {
	// Save writes the upload and returns the generated filename the
	// caller should persist.
	Save(prefix string, file *multipart.FileHeader) (string, error)

	// Path resolves a previously returned filename to a readable path.
	Path(filename string) (string, error)
}

type LocalStore struct {
	dir    string
	logger *zap.Logger
}

func NewLocalStore(dir string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save stores the upload under a unique filename. Only png/jpg/jpeg are
// accepted. Files replaced by a later upload are not cleaned up.
func (s *LocalStore) Save(prefix string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", utils.ErrUnsupportedFile
	}

	filename := prefix + "_" + uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	s.logger.Info("stored asset",
		zap.String("filename", filename),
		zap.Int64("size", file.Size))

	return filename, nil
}

func (s *LocalStore) Path(filename string) (string, error) {
	// Stored names never contain separators; reject anything that could
	// escape the upload directory.
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return "", os.ErrNotExist
	}

	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
