package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrowiemesfilho/doc2md/internal/domain"
)

func TestConvertAll_KeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	var paths, want []string
	for i := 0; i < 12; i++ {
		content := fmt.Sprintf("document %d", i)
		paths = append(paths, writeFileIn(t, dir, fmt.Sprintf("doc%02d.txt", i), content))
		want = append(want, content)
	}

	for _, jobs := range []int{0, 1, 4, 32} {
		t.Run(fmt.Sprintf("jobs=%d", jobs), func(t *testing.T) {
			got, err := ConvertAll(context.Background(), paths, jobs)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestConvertAll_StopsOnFailure(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFileIn(t, dir, "ok.txt", "fine"),
		filepath.Join(dir, "contract.rtf"),
	}

	got, err := ConvertAll(context.Background(), paths, 2)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "contract.rtf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestConvertAll_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeFileIn(t, dir, "a.txt", "a")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConvertAll(ctx, paths, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvertAll_Empty(t *testing.T) {
	got, err := ConvertAll(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}
