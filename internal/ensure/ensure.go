// Package ensure implements the tool's primary operation: make sure a
// directory is a segment of the persisted PATH.
package ensure

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"addpath/internal/env"
	"addpath/internal/pathlist"
)

// Status is the terminal state of a single run.
type Status int

const (
	// StatusFound means the directory was already a PATH segment and
	// nothing was written.
	StatusFound Status = iota
	// StatusAdded means the directory was appended to PATH.
	StatusAdded
)

// Options carries the inputs for one run. The PATH value and the writer
// are injected rather than read from the process so runs are testable
// without touching real OS state.
type Options struct {
	Dir       string     // directory that must end up on PATH
	PathValue string     // current PATH value
	Separator string     // PATH list separator
	Writer    env.Writer // persistence mechanism
	Out       io.Writer  // status messages
	DryRun    bool       // report what would change, never write
}

// Result describes what a run did.
type Result struct {
	Status  Status
	Dir     string
	NewPath string // the value handed to the writer when Status is StatusAdded
}

// Run checks whether opts.Dir is an exact segment of opts.PathValue and
// appends it to the persisted PATH when it is not. At most one write
// happens per run; a run whose directory is already present writes
// nothing, so repeated runs converge after the first.
func Run(opts Options) (Result, error) {
	segments := pathlist.Split(opts.PathValue, opts.Separator)
	if pathlist.Contains(segments, opts.Dir) {
		fmt.Fprintf(opts.Out, "%s is already in PATH.\n", opts.Dir)
		return Result{Status: StatusFound, Dir: opts.Dir}, nil
	}

	fmt.Fprintf(opts.Out, "Adding %s to your PATH...\n", opts.Dir)

	newPath := pathlist.Append(opts.PathValue, opts.Dir, opts.Separator)
	if opts.DryRun {
		log.Info().Str("dir", opts.Dir).Msg("dry run, skipping persistence")
		return Result{Status: StatusAdded, Dir: opts.Dir, NewPath: newPath}, nil
	}

	if err := opts.Writer.SetPersistent("PATH", newPath); err != nil {
		return Result{}, errors.Wrap(err, "updating PATH")
	}

	log.Debug().Str("dir", opts.Dir).Msg("PATH updated")
	return Result{Status: StatusAdded, Dir: opts.Dir, NewPath: newPath}, nil
}
