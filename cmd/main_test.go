package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrowiemesfilho/doc2md/internal/domain"
	"github.com/leandrowiemesfilho/doc2md/internal/testutil"
)

func TestConvertAction_WritesMarkdownIntoDirectory(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	docx := testutil.WriteDocx(t, in, "agreement.docx",
		testutil.DocumentXML(`<w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t>Scope</w:t></w:r></w:p>`),
		testutil.DefaultStyles)
	txt := filepath.Join(in, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("plain"), 0o644))

	err := newApp().Run([]string{"doc2md", "--output", out, "--jobs", "2", docx, txt})
	require.NoError(t, err)

	md, err := os.ReadFile(filepath.Join(out, "agreement.md"))
	require.NoError(t, err)
	assert.Equal(t, "## Scope", string(md))

	md, err = os.ReadFile(filepath.Join(out, "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "plain", string(md))
}

func TestConvertAction_SingleOutputFile(t *testing.T) {
	in := t.TempDir()
	txt := filepath.Join(in, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0o644))
	target := filepath.Join(t.TempDir(), "nested", "result.md")

	err := newApp().Run([]string{"doc2md", "-o", target, txt})
	require.NoError(t, err)

	md, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(md))
}

func TestConvertAction_Errors(t *testing.T) {
	in := t.TempDir()
	rtf := filepath.Join(in, "contract.rtf")
	require.NoError(t, os.WriteFile(rtf, []byte("{\\rtf1}"), 0o644))

	err := newApp().Run([]string{"doc2md"})
	assert.EqualError(t, err, "no input files specified")

	err = newApp().Run([]string{"doc2md", filepath.Join(in, "missing.pdf")})
	assert.ErrorContains(t, err, "input file does not exist")

	err = newApp().Run([]string{"doc2md", rtf})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
