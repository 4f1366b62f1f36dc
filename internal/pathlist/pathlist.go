// Package pathlist holds the pure string operations on PATH values.
// Nothing here touches the process environment; callers pass the raw
// value and the separator so behavior is identical across `;` and `:`
// conventions.
package pathlist

import (
	"os"
	"path/filepath"
	"strings"
)

// scriptsSuffix is where the dependency tree of a project checkout puts
// its Python Scripts directory.
var scriptsSuffix = filepath.Join("_build", "target-deps", "python", "Scripts")

// Separator returns the PATH list separator of the host OS.
func Separator() string {
	return string(os.PathListSeparator)
}

// ScriptsDir computes the Scripts directory for the checkout rooted at
// cwd. Pure concatenation: the directory is not required to exist.
func ScriptsDir(cwd string) string {
	return filepath.Join(cwd, scriptsSuffix)
}

// Split breaks a raw PATH value into its ordered segments. An empty
// value has no segments.
func Split(raw, sep string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, sep)
}

// Contains reports whether target appears as an exact segment. No
// normalization, no case folding: "C:\proj" and "c:\proj" differ.
func Contains(segments []string, target string) bool {
	for _, s := range segments {
		if s == target {
			return true
		}
	}
	return false
}

// Append returns the PATH value with target appended. An empty current
// value yields target alone, never a leading separator.
func Append(current, target, sep string) string {
	if current == "" {
		return target
	}
	return current + sep + target
}
