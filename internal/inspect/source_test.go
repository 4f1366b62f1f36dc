package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFindSourceIn(t *testing.T) {
	dir := t.TempDir()
	rc := writeFile(t, dir, ".zshrc",
		"# export PATH=\"$PATH:/opt/foo/bin\"\n"+
			"alias ll='ls -l'\n"+
			"export PATH=\"$PATH:/opt/foo/bin\"\n")
	profile := writeFile(t, dir, ".profile", "export EDITOR=vi\n")

	file, line, ok := findSourceIn([]string{profile, rc}, "/opt/foo/bin")

	require.True(t, ok)
	assert.Equal(t, rc, file)
	assert.Equal(t, 3, line, "commented-out definition must be skipped")
}

func TestFindSourceInMissingFiles(t *testing.T) {
	_, _, ok := findSourceIn([]string{filepath.Join(t.TempDir(), "nope")}, "/opt/foo/bin")
	assert.False(t, ok)
}

func TestLineAt(t *testing.T) {
	dir := t.TempDir()
	rc := writeFile(t, dir, "rc", "one\ntwo\nthree\n")

	assert.Equal(t, "two", LineAt(rc, 2))
	assert.Equal(t, "", LineAt(rc, 99))
	assert.Equal(t, "", LineAt(filepath.Join(dir, "nope"), 1))
}
