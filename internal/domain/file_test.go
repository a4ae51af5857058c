package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	assert.Equal(t, ".docx", Extension("Contract.DOCX"))
	assert.Equal(t, ".pdf", Extension("dir.v1/scan.pdf"))
	assert.Equal(t, ".gz", Extension("archive.tar.gz"))
	assert.Equal(t, "", Extension("README"))
}

func TestFileTypeFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want FileType
		ok   bool
	}{
		{".docx", DOCX, true},
		{"DOCX", DOCX, true},
		{".Pdf", PDF, true},
		{"txt", TXT, true},
		{".doc", "", false},
		{".rtf", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, ok := FileTypeFromExtension(tt.ext)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllowedExtensionsAreRecognized(t *testing.T) {
	for _, ext := range AllowedExtensions {
		_, ok := FileTypeFromExtension(ext)
		assert.True(t, ok, ext)
	}
}

func TestFileType_Label(t *testing.T) {
	assert.Equal(t, "Word document", DOCX.Label())
	assert.Equal(t, "PDF document", PDF.Label())
	assert.Equal(t, "text file", TXT.Label())
}
