package model

// PathEntry represents a single directory segment of the PATH variable.
type PathEntry struct {
	Value       string // The directory exactly as it appears in PATH
	Exists      bool   // Directory is present on disk
	IsTarget    bool   // This is the directory addpath manages
	IsDuplicate bool   // True if an earlier entry has the same value
	DuplicateOf int    // Index of the first occurrence if this is a duplicate
	Remediation string // Advice on how to fix/remove if duplicate
	SourceFile  string // Config file that introduces this entry, if found
	SourceLine  int    // Line number in the source file
}

// Inspection is the analyzed view of a PATH value.
type Inspection struct {
	Raw         string // The PATH value that was inspected
	Target      string // The managed directory, empty if none
	TargetFound bool   // Target appears as an exact segment
	Entries     []PathEntry
	Diagnostics []string
}

// Duplicates returns the indices of all duplicate entries.
func (ins Inspection) Duplicates() []int {
	var out []int
	for i, e := range ins.Entries {
		if e.IsDuplicate {
			out = append(out, i)
		}
	}
	return out
}

// Missing returns the indices of entries whose directory does not exist.
func (ins Inspection) Missing() []int {
	var out []int
	for i, e := range ins.Entries {
		if !e.Exists {
			out = append(out, i)
		}
	}
	return out
}
