package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversion and upload.
var (
	ErrUnsupportedFormat = errors.New("unsupported file type for conversion")
	ErrConversion        = errors.New("conversion failed")

	ErrMissingFile     = errors.New("file field is required")
	ErrFileNameTooLong = errors.New("file name too long")
	ErrFileTooLarge    = errors.New("file too large")
)

// UnsupportedFormatError is returned when a file extension is not one of the
// recognized inputs. It is raised before any parsing is attempted.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type for conversion: %s", e.Ext)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ConversionError wraps a read or parse failure of an otherwise supported file.
type ConversionError struct {
	Format FileType
	Path   string
	Err    error
}

// NewConversionError builds a ConversionError for the given format and cause.
func NewConversionError(format FileType, path string, err error) *ConversionError {
	return &ConversionError{Format: format, Path: path, Err: err}
}

func (e *ConversionError) Error() string {
	if e.Format == TXT {
		return fmt.Sprintf("failed to read text file: %v", e.Err)
	}
	return fmt.Sprintf("failed to convert %s to Markdown: %v", e.Format.Label(), e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}
