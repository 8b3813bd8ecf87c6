package solver

import (
	"errors"
	"fmt"
)

// ErrOptionFileConflict is returned when the caller sets option_file_name
// explicitly while also supplying OF_-prefixed options. We can't tell whether
// they meant to overwrite, merge, or simply made a mistake, so we refuse.
var ErrOptionFileConflict = errors.New(
	"the 'option_file_name' option cannot be combined with options-file options (keys starting with 'OF_')")

// ErrSolverNotFound is returned when no executable could be resolved for a
// registered solver name.
var ErrSolverNotFound = errors.New("solver executable not found")

// badOptionError marks a malformed option key (e.g. a bare "OF_" prefix).
type badOptionError struct {
	Key    string
	Reason string
}

func (e *badOptionError) Error() string {
	return fmt.Sprintf("invalid solver option %q: %s", e.Key, e.Reason)
}
