package inspect

import (
	"fmt"
	"strings"

	"addpath/internal/model"
)

// GenerateReport renders a plain-text diagnostic of the inspection.
// verbose adds source attribution and the raw PATH value.
func GenerateReport(ins model.Inspection, verbose bool) string {
	var b strings.Builder

	b.WriteString("PATH Report (addpath " + model.Version + ")\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	if ins.Target != "" {
		if ins.TargetFound {
			fmt.Fprintf(&b, "Managed directory: %s (in PATH)\n\n", ins.Target)
		} else {
			fmt.Fprintf(&b, "Managed directory: %s (NOT in PATH)\n\n", ins.Target)
		}
	}

	fmt.Fprintf(&b, "Entries (%d):\n", len(ins.Entries))
	for i, e := range ins.Entries {
		var flags []string
		if e.IsTarget {
			flags = append(flags, "target")
		}
		if !e.Exists {
			flags = append(flags, "missing")
		}
		if e.IsDuplicate {
			flags = append(flags, fmt.Sprintf("duplicate of %d", e.DuplicateOf+1))
		}

		suffix := ""
		if len(flags) > 0 {
			suffix = "  [" + strings.Join(flags, ", ") + "]"
		}
		fmt.Fprintf(&b, "%3d. %s%s\n", i+1, e.Value, suffix)

		if verbose && e.SourceFile != "" {
			fmt.Fprintf(&b, "     source: %s:%d\n", e.SourceFile, e.SourceLine)
		}
		if verbose && e.Remediation != "" {
			fmt.Fprintf(&b, "     advice: %s\n", e.Remediation)
		}
	}

	if len(ins.Diagnostics) > 0 {
		b.WriteString("\nDiagnostics:\n")
		for _, d := range ins.Diagnostics {
			fmt.Fprintf(&b, "  - %s\n", d)
		}
	}

	if verbose {
		fmt.Fprintf(&b, "\nRaw PATH value:\n%s\n", ins.Raw)
	}

	return b.String()
}
