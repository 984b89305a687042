package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"issue-dataset/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLabelDirs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, InitLabelDirs(root, []string{"bug", "feature"}))
	// second call must not fail on existing directories
	require.NoError(t, InitLabelDirs(root, []string{"bug", "feature"}))

	for _, label := range []string{"bug", "feature"} {
		info, err := os.Stat(filepath.Join(root, label))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestInitLabelDirs_RootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))

	assert.Error(t, InitLabelDirs(root, []string{"bug"}))
}

func TestWriteIssue(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, InitLabelDirs(root, []string{"bug"}))

	issue := types.Issue{Number: 42, Title: "Crash on start", Body: "Details"}
	path, err := WriteIssue(root, "bug", issue)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "bug", "42.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Crash on start\nDetails", string(data))

	issue.Body = "Updated"
	_, err = WriteIssue(root, "bug", issue)
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Crash on start\nUpdated", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "bug"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteIssue_MissingLabelDir(t *testing.T) {
	_, err := WriteIssue(t.TempDir(), "bug", types.Issue{Number: 1})
	assert.Error(t, err)
}
