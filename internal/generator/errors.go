package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted reports a failure partway through multi-table processing.
	// The previously committed artifact is left untouched; commits are
	// all-or-nothing per run.
	ErrAborted = errors.New("generation aborted")

	// ErrConcurrentRun reports that another run holds the output lock.
	// The caller must retry later.
	ErrConcurrentRun = errors.New("concurrent run rejected")
)

// StageError names the pipeline stage a failure occurred in, so commands can
// report which of Reading/Normalizing/Resolving/Emitting/Comparing failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
