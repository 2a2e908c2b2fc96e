package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content"), 0o644))
}

func TestListRuleFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-rule.md")
	writeFile(t, dir, "a-rule.md")
	writeFile(t, dir, "_draft.md")
	writeFile(t, dir, "_template.md")
	writeFile(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.md"), 0o755))

	files, err := ListRuleFiles(dir)
	require.NoError(t, err)

	// Directory-listing order, ignore-prefixed and non-markdown names skipped.
	assert.Equal(t, []string{"a-rule.md", "b-rule.md"}, files)
}

func TestListRuleFilesEmptyDir(t *testing.T) {
	files, err := ListRuleFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListRuleFilesMissingDir(t *testing.T) {
	_, err := ListRuleFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing rules directory")
}
