// Package inspect analyzes a PATH value: which segments exist on disk,
// which are duplicates, and where the managed directory sits in the list.
package inspect

import (
	"fmt"
	"os"

	"addpath/internal/model"
	"addpath/internal/pathlist"
)

// Analyze builds an Inspection of the given PATH value. target marks the
// directory addpath manages; pass "" when none applies. Empty segments
// (from doubled separators) are skipped.
func Analyze(raw, sep, target string) model.Inspection {
	ins := model.Inspection{Raw: raw, Target: target}

	seen := make(map[string]int) // value -> index of first occurrence
	for _, seg := range pathlist.Split(raw, sep) {
		if seg == "" {
			continue
		}

		e := model.PathEntry{Value: seg}
		if fi, err := os.Stat(seg); err == nil && fi.IsDir() {
			e.Exists = true
		}
		if seg == target {
			e.IsTarget = true
			ins.TargetFound = true
		}

		if firstIdx, ok := seen[seg]; ok {
			e.IsDuplicate = true
			e.DuplicateOf = firstIdx
			e.Remediation = fmt.Sprintf(
				"Duplicate of entry %d. The second occurrence is dead weight; remove one definition.",
				firstIdx+1)
		} else {
			seen[seg] = len(ins.Entries)
		}

		ins.Entries = append(ins.Entries, e)
	}

	ins.Diagnostics = diagnose(ins)
	return ins
}

func diagnose(ins model.Inspection) []string {
	var diags []string

	if dups := ins.Duplicates(); len(dups) > 0 {
		diags = append(diags, fmt.Sprintf("%d duplicate PATH entries found.", len(dups)))
	}
	if missing := ins.Missing(); len(missing) > 0 {
		diags = append(diags, fmt.Sprintf("%d PATH entries point to directories that do not exist.", len(missing)))
	}
	if ins.Target != "" && !ins.TargetFound {
		diags = append(diags, fmt.Sprintf("%s is not in PATH. Run addpath to add it.", ins.Target))
	}

	return diags
}
