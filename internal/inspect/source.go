package inspect

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"

	"addpath/internal/model"
)

// configFiles lists the places a PATH entry is usually introduced,
// roughly in the order the shell reads them. penv.sh last: that is the
// managed section our own writes end up in on unix.
func configFiles() []string {
	return []string{
		filepath.Join(xdg.Home, ".zshenv"),
		filepath.Join(xdg.Home, ".zprofile"),
		filepath.Join(xdg.Home, ".zshrc"),
		filepath.Join(xdg.Home, ".bash_profile"),
		filepath.Join(xdg.Home, ".bashrc"),
		filepath.Join(xdg.Home, ".profile"),
		filepath.Join(xdg.ConfigHome, "penv.sh"),
	}
}

// Attribute fills in SourceFile/SourceLine for every entry it can trace
// back to a shell config file. Entries set by the session (virtualenvs,
// tool shims) legitimately have no source and are left blank.
func Attribute(ins *model.Inspection) {
	files := configFiles()
	for i := range ins.Entries {
		file, line, ok := findSourceIn(files, ins.Entries[i].Value)
		if !ok {
			continue
		}
		ins.Entries[i].SourceFile = file
		ins.Entries[i].SourceLine = line
	}
}

// findSourceIn scans files in order for the first non-comment line that
// mentions dir.
func findSourceIn(files []string, dir string) (string, int, bool) {
	for _, f := range files {
		line, ok := scanFile(f, dir)
		if ok {
			return f, line, true
		}
	}
	return "", 0, false
}

func scanFile(path, needle string) (int, bool) {
	fh, err := os.Open(path)
	if err != nil {
		// Most candidates won't exist on any given machine.
		return 0, false
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if strings.Contains(line, needle) {
			return lineNo, true
		}
	}
	if err := scanner.Err(); err != nil {
		log.Debug().Err(err).Str("file", path).Msg("config scan aborted")
	}
	return 0, false
}

// LineAt returns line n (1-based) of the given file, for showing the
// definition next to an attributed entry. Empty string when unreadable
// or out of range.
func LineAt(path string, n int) string {
	fh, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == n {
			return scanner.Text()
		}
	}
	return ""
}
