package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, 2, 18, 14, 32, 7, 0, time.UTC)

func TestDateSuffix(t *testing.T) {
	assert.Equal(t, "18.02.2026", DateSuffix(testDate))
}

func TestBuildPath(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "session")

	tests := []struct {
		name   string
		suffix string
		ext    string
		want   string
	}{
		{"csv", "", ".csv", "session_18.02.2026.csv"},
		{"txt", "", ".txt", "session_18.02.2026.txt"},
		{"with suffix", "_rc", ".csv", "session_rc_18.02.2026.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.Join(dir, tt.want), BuildPath(base, tt.suffix, tt.ext, testDate))
		})
	}
}

// BuildPath returns the same path even if the file already exists (append mode).
func TestBuildPath_ExistingFileReturnsSamePath(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "session_18.02.2026.csv")
	require.NoError(t, os.WriteFile(first, []byte{}, 0644))

	assert.Equal(t, first, BuildPath(filepath.Join(dir, "session"), "", ".csv", testDate))
}

func TestTXTPath(t *testing.T) {
	assert.Equal(t, "results/session.txt", TXTPath("results/session.csv"))
	assert.Equal(t, "report.txt", TXTPath("report"))
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "file.csv")

	require.NoError(t, EnsureDir(path))
	info, err := os.Stat(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// second call is a no-op
	assert.NoError(t, EnsureDir(path))
}

func TestHasContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.csv")
	assert.False(t, hasContent(path))

	require.NoError(t, os.WriteFile(path, nil, 0644))
	assert.False(t, hasContent(path), "empty file")

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, hasContent(path))
	assert.False(t, hasContent(dir))
}
