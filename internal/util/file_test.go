package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "series.json")

	require.NoError(t, WriteFileAtomic(path, []byte("[1]")))
	require.NoError(t, WriteFileAtomic(path, []byte("[1,2]")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestHuman(t *testing.T) {
	assert.Equal(t, "512 B", Human(512))
	assert.Equal(t, "1.50 KB", Human(1536))
	assert.Equal(t, "2.00 MB", Human(2<<20))
	assert.Equal(t, "3.00 GB", Human(3<<30))
	assert.Equal(t, "2048.00 GB", Human(2<<40))
}
