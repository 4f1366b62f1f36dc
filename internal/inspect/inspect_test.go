package inspect

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	existing := t.TempDir()
	missing := filepath.Join(existing, "does-not-exist")
	raw := strings.Join([]string{existing, missing, existing}, ":")

	ins := Analyze(raw, ":", missing)

	require.Len(t, ins.Entries, 3)

	assert.True(t, ins.Entries[0].Exists)
	assert.False(t, ins.Entries[0].IsDuplicate)

	assert.False(t, ins.Entries[1].Exists)
	assert.True(t, ins.Entries[1].IsTarget)
	assert.True(t, ins.TargetFound)

	assert.True(t, ins.Entries[2].IsDuplicate)
	assert.Equal(t, 0, ins.Entries[2].DuplicateOf)
	assert.NotEmpty(t, ins.Entries[2].Remediation)
}

func TestAnalyzeTargetAbsent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Scripts")

	ins := Analyze(dir, ":", target)

	assert.False(t, ins.TargetFound)
	require.NotEmpty(t, ins.Diagnostics)
	assert.Contains(t, ins.Diagnostics[len(ins.Diagnostics)-1], "not in PATH")
}

func TestAnalyzeSkipsEmptySegments(t *testing.T) {
	dir := t.TempDir()

	ins := Analyze(dir+"::"+dir, ":", "")

	assert.Len(t, ins.Entries, 2, "doubled separator must not produce an empty entry")
}

func TestAnalyzeEmptyPath(t *testing.T) {
	ins := Analyze("", ":", "/opt/tool/bin")

	assert.Empty(t, ins.Entries)
	assert.False(t, ins.TargetFound)
}

func TestGenerateReport(t *testing.T) {
	existing := t.TempDir()
	missing := filepath.Join(existing, "gone")

	ins := Analyze(existing+":"+missing, ":", existing)
	report := GenerateReport(ins, false)

	assert.Contains(t, report, "Entries (2):")
	assert.Contains(t, report, existing)
	assert.Contains(t, report, "[target]")
	assert.Contains(t, report, "[missing]")
	assert.Contains(t, report, "(in PATH)")
	assert.NotContains(t, report, "Raw PATH value", "raw value is verbose-only")

	verbose := GenerateReport(ins, true)
	assert.Contains(t, verbose, "Raw PATH value")
}
