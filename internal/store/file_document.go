package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/MKhiriev/ava-cli/models"
)

const (
	documentFileMode = 0o644
	tempFilePattern  = ".doc-*.tmp"
)

// documentFileStorage is the local file-system implementation of
// [DocumentStorage]. The copy is written to a temporary file inside the
// target directory and renamed over the canonical name, so readers of the
// directory never observe a partially written document.
type documentFileStorage struct {
	logger *logger.Logger
}

// NewDocumentFileStorage constructs a new [DocumentStorage] backed by the
// local file system.
func NewDocumentFileStorage(logger *logger.Logger) DocumentStorage {
	return &documentFileStorage{logger: logger.WithComponent("store")}
}

// Save implements [DocumentStorage].
func (s *documentFileStorage) Save(ctx context.Context, sourcePath, dir string) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return models.Document{}, fmt.Errorf("open source document: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return models.Document{}, fmt.Errorf("stat source document: %w", err)
	}
	if !info.Mode().IsRegular() {
		return models.Document{}, fmt.Errorf("%w: %s", ErrNotRegularFile, sourcePath)
	}

	destination := filepath.Join(dir, models.CanonicalDocumentName)

	written, err := replaceFile(destination, src)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrDocumentNotSaved, err)
	}

	s.logger.Info().
		Str("source", sourcePath).
		Str("destination", destination).
		Int64("bytes", written).
		Msg("document stored")

	return models.Document{
		OriginalName: filepath.Base(sourcePath),
		Name:         models.CanonicalDocumentName,
		Path:         destination,
	}, nil
}

// replaceFile writes r to a temporary file next to destination and renames
// it into place.
func replaceFile(destination string, r io.Reader) (written int64, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(destination), tempFilePattern)
	if err != nil {
		return 0, fmt.Errorf("create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if written, err = io.Copy(tmp, r); err != nil {
		return 0, fmt.Errorf("copy document: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return 0, fmt.Errorf("sync document: %w", err)
	}
	if err = tmp.Chmod(documentFileMode); err != nil {
		return 0, fmt.Errorf("chmod document: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("close document: %w", err)
	}
	if err = os.Rename(tmp.Name(), destination); err != nil {
		return 0, fmt.Errorf("rename document: %w", err)
	}

	return written, nil
}
