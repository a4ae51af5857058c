// Package upload validates uploaded documents and persists them for conversion.
package upload

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/leandrowiemesfilho/doc2md/internal/domain"
)

// MaxFilenameLength is the longest accepted original file name.
const MaxFilenameLength = 255

// Store writes uploads into a single directory. Stored files are never
// removed after conversion.
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates a Store rooted at dir accepting files up to maxBytes.
func NewStore(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

// Dir returns the upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// MaxBytes returns the largest accepted upload size.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// TooLargeError reports an upload over the size limit.
func (s *Store) TooLargeError() error {
	return fmt.Errorf("%w. Maximum size allowed: %sMB", domain.ErrFileTooLarge, formatMB(s.maxBytes))
}

// ValidateFilename checks the extension against the allow-list and the
// name length.
func ValidateFilename(name string) error {
	ext := domain.Extension(name)
	if _, ok := domain.FileTypeFromExtension(ext); !ok {
		return &domain.UnsupportedFormatError{Ext: ext}
	}
	if len(name) > MaxFilenameLength {
		return domain.ErrFileNameTooLong
	}
	return nil
}

// UniqueFilename derives a collision-resistant stored name from the original
// name, keeping its extension: eight hex characters of a random UUID, an
// underscore, and the time_low field of a second random UUID.
func UniqueFilename(original string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	u := uuid.New()
	timeLow := binary.BigEndian.Uint32(u[:4])
	return fmt.Sprintf("%s_%d%s", id, timeLow, filepath.Ext(original))
}

// Save validates name, then copies r into a uniquely named file in the
// upload directory and returns its path. A partially written file is
// removed on failure.
func (s *Store) Save(name string, r io.Reader) (path string, err error) {
	if err := ValidateFilename(name); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	path = filepath.Join(s.dir, UniqueFilename(name))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error saving file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
			path = ""
		}
	}()

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return path, fmt.Errorf("error saving file: %w", err)
	}
	if n > s.maxBytes {
		return path, s.TooLargeError()
	}
	return path, nil
}

func formatMB(n int64) string {
	return fmt.Sprintf("%.1f", float64(n)/(1024*1024))
}
