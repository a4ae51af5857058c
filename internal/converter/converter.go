// Package converter dispatches documents to the reader for their format.
package converter

import (
	"github.com/leandrowiemesfilho/doc2md/internal/docx"
	"github.com/leandrowiemesfilho/doc2md/internal/domain"
	"github.com/leandrowiemesfilho/doc2md/internal/pdf"
)

// Converter turns the file at path into Markdown.
type Converter interface {
	Convert(path string) (string, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(path string) (string, error)

func (f ConverterFunc) Convert(path string) (string, error) {
	return f(path)
}

var converters = map[domain.FileType]Converter{
	domain.DOCX: ConverterFunc(docx.ConvertFile),
	domain.PDF:  ConverterFunc(pdf.ConvertFile),
	domain.TXT:  ConverterFunc(ReadText),
}

// GetConverter returns the appropriate converter based on file extension.
// Unrecognized extensions fail with *domain.UnsupportedFormatError before
// the file is touched.
func GetConverter(filePath string) (Converter, domain.FileType, error) {
	ext := domain.Extension(filePath)
	fileType, ok := domain.FileTypeFromExtension(ext)
	if !ok {
		return nil, "", &domain.UnsupportedFormatError{Ext: ext}
	}
	return converters[fileType], fileType, nil
}

// ConvertFile converts the file at path to Markdown according to its extension.
func ConvertFile(path string) (string, error) {
	conv, _, err := GetConverter(path)
	if err != nil {
		return "", err
	}
	return conv.Convert(path)
}
