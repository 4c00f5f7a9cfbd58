package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0}, 0o644))
}

func TestLoadSamplePairs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "zebra_in.png")
	touch(t, dir, "zebra_mask.png")
	touch(t, dir, "bird_in.png")
	touch(t, dir, "bird_mask.png")
	touch(t, dir, "bird_out.png")
	touch(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested_in.png"), 0o755))

	samples, err := LoadSamplePairs(dir)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "bird", samples[0].Name)
	assert.Equal(t, filepath.Join(dir, "bird_in.png"), samples[0].InputPath)
	assert.Equal(t, filepath.Join(dir, "bird_mask.png"), samples[0].MaskPath)
	assert.Equal(t, filepath.Join(dir, "bird_out.png"), samples[0].OutputPath())
	assert.Equal(t, filepath.Join(dir, "bird_opencv.png"), samples[0].ReferencePath())
	assert.Equal(t, filepath.Join(dir, "bird_sheet.png"), samples[0].SheetPath())
	assert.Equal(t, "zebra", samples[1].Name)
}

func TestLoadSamplePairsMissingMask(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "lonely_in.png")

	_, err := LoadSamplePairs(dir)
	assert.Error(t, err)
}

func TestLoadSamplePairsMissingDir(t *testing.T) {
	_, err := LoadSamplePairs(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
