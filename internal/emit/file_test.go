package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "include", "board_pos.h")

	require.NoError(t, WriteFile(path, []byte("first\n")))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(got))

	require.NoError(t, WriteFile(path, []byte("second\n")))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board_pos.h")

	err := Check(path, []byte("a\n"))
	assert.ErrorIs(t, err, ErrStale)

	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0644))
	assert.NoError(t, Check(path, []byte("a\nb\n")))

	err = Check(path, []byte("a\nc\n"))
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, err.Error(), "line 2:\n- b\n+ c\n")
}

func TestCheck_ReportsWholeLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board_pos.h")
	onDisk := "    {{0.000f, 0.000f}, {0.000f, 37.000f}},\n"
	fresh := "    {{0.000f, 24.000f}, {0.000f, 61.000f}},\n"
	require.NoError(t, os.WriteFile(path, []byte(onDisk), 0644))

	err := Check(path, []byte(fresh))
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, err.Error(), "- "+strings.TrimSuffix(onDisk, "\n"))
	assert.Contains(t, err.Error(), "+ "+strings.TrimSuffix(fresh, "\n"))
}

func TestCheck_ReportsAddedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board_pos.h")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	err := Check(path, []byte("a\nb\n"))
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, err.Error(), "+ b\n")
}
