package pathlist

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptsDir(t *testing.T) {
	sep := string(filepath.Separator)
	want := filepath.Join("proj", "_build", "target-deps", "python", "Scripts")

	tests := []struct {
		name string
		cwd  string
	}{
		{"plain", "proj"},
		{"trailing separator", "proj" + sep},
		{"doubled separator", "proj" + sep + sep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScriptsDir(tt.cwd)
			assert.Equal(t, want, got)
			assert.NotContains(t, got, sep+sep, "must not produce double separators")
		})
	}
}

func TestScriptsDirAbsolute(t *testing.T) {
	cwd := filepath.Join(t.TempDir(), "checkout")
	got := ScriptsDir(cwd)
	assert.True(t, strings.HasPrefix(got, cwd))
	assert.Equal(t, filepath.Join(cwd, "_build", "target-deps", "python", "Scripts"), got)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		sep  string
		want []string
	}{
		{"empty", "", ":", nil},
		{"single", "/usr/bin", ":", []string{"/usr/bin"}},
		{"colon", "/usr/bin:/bin", ":", []string{"/usr/bin", "/bin"}},
		{"semicolon", `C:\Windows;C:\proj`, ";", []string{`C:\Windows`, `C:\proj`}},
		{"keeps empty segments", "/usr/bin::/bin", ":", []string{"/usr/bin", "", "/bin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.raw, tt.sep))
		})
	}
}

func TestContains(t *testing.T) {
	segments := []string{`C:\Windows`, `C:\proj\_build\target-deps\python\Scripts`}

	assert.True(t, Contains(segments, `C:\proj\_build\target-deps\python\Scripts`))
	assert.False(t, Contains(segments, `C:\proj`), "prefix is not membership")
	assert.False(t, Contains(segments, `c:\windows`), "comparison is case-sensitive")
	assert.False(t, Contains(nil, `C:\Windows`))
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		sep     string
		want    string
	}{
		{"non-empty", `C:\Windows`, `C:\proj\Scripts`, ";", `C:\Windows;C:\proj\Scripts`},
		{"unix", "/usr/bin", "/opt/tool/bin", ":", "/usr/bin:/opt/tool/bin"},
		{"empty current omits separator", "", "/opt/tool/bin", ":", "/opt/tool/bin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Append(tt.current, tt.target, tt.sep))
		})
	}
}
