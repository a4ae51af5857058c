// Package testutil builds document fixtures for tests.
package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

// DefaultStyles declares Normal as the default paragraph style and the
// built-in heading styles under their stored lowercase names.
const DefaultStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles ` + wordNS + `>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/></w:style>
<w:style w:type="character" w:styleId="Strong"><w:name w:val="Strong"/></w:style>
</w:styles>`

// DocumentXML wraps body markup in a word/document.xml envelope.
func DocumentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document ` + wordNS + `><w:body>` + body + `<w:sectPr/></w:body></w:document>`
}

// WriteDocx writes a DOCX container holding the given document and styles
// parts to dir/name and returns its path. An empty styles string omits
// word/styles.xml.
func WriteDocx(t *testing.T, dir, name, document, styles string) string {
	t.Helper()

	parts := map[string]string{
		"[Content_Types].xml": contentTypes,
		"word/document.xml":   document,
	}
	if styles != "" {
		parts["word/styles.xml"] = styles
	}
	return WriteZip(t, filepath.Join(dir, name), parts)
}

// WriteZip writes a zip archive with the given entries to path.
func WriteZip(t *testing.T, path string, entries map[string]string) string {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}
