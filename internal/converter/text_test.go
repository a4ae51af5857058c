package converter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/leandrowiemesfilho/doc2md/internal/domain"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadText_UTF8Unchanged(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"Line one\r\nLínea dos\n\n\ttabbed   \n",
		"\ufeffBOM is kept",
		"合同编号：2024-001\n甲方：某某公司",
		"# Already markdown\n\n- item",
	}

	for _, in := range inputs {
		path := writeFile(t, "notes.txt", []byte(in))
		got, err := ConvertFile(path)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestReadText_GBKFallback(t *testing.T) {
	want := "合同条款\n第一条：双方同意。"
	encoded, err := simplifiedchinese.GBK.NewEncoder().String(want)
	require.NoError(t, err)

	path := writeFile(t, "contract.txt", []byte(encoded))
	got, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadText_Undecodable(t *testing.T) {
	path := writeFile(t, "binary.txt", []byte{0xff, 0xff, 0xff})

	_, err := ReadText(path)
	require.Error(t, err)

	var convErr *domain.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, domain.TXT, convErr.Format)
	assert.True(t, errors.Is(err, errInvalidGBK))
	assert.Contains(t, err.Error(), "failed to read text file")
}

func writeFileIn(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
