package domain

import (
	"path/filepath"
	"strings"
)

// FileType represents supported file types
type FileType string

const (
	DOCX FileType = "docx"
	PDF  FileType = "pdf"
	TXT  FileType = "txt"
)

// AllowedExtensions lists the extensions accepted for conversion.
var AllowedExtensions = []string{".pdf", ".docx", ".txt"}

// Extension returns the lowercased extension of path, including the dot.
func Extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// FileTypeFromExtension maps an extension (with or without the leading dot,
// any case) to a FileType.
func FileTypeFromExtension(ext string) (FileType, bool) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	switch ext {
	case ".docx":
		return DOCX, true
	case ".pdf":
		return PDF, true
	case ".txt":
		return TXT, true
	default:
		return "", false
	}
}

// Label is the human readable name used in messages.
func (t FileType) Label() string {
	switch t {
	case DOCX:
		return "Word document"
	case PDF:
		return "PDF document"
	case TXT:
		return "text file"
	default:
		return "document"
	}
}

// ConversionResult is the payload returned to HTTP clients after a successful conversion.
type ConversionResult struct {
	OriginalFilename string `json:"original_filename"`
	MarkdownContent  string `json:"markdown_content"`
	Message          string `json:"message"`
}
