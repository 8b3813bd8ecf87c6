/*
PURPOSE:
  Temp-file authority for solver invocations.
  Hands out suffix-tagged temp files (log files, options files) and
  remembers them so a run can clean up after itself.

REQUIREMENTS:
  User-specified:
  - Temp files should be removable in one call at the end of a run.
  - A keep-temp-files switch for debugging solver behavior.

  Implementation-discovered:
  - os.CreateTemp wants the random part in the middle ("*"), the suffix
    goes after it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/solver/command.go, internal/engine
  - Uses: os

ERROR HANDLING:
  - I/O errors are propagated untranslated; callers decide.

IMPLEMENTATION RULES:
  - Thread-safe: the engine may eventually run solves in parallel.
  - Cleanup ignores files that are already gone.

USAGE:
  tm := solver.NewTempFileManager("", false)
  path, err := tm.CreateTempFile("_ipopt.log")
  defer tm.Cleanup()

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/solver/command.go

MAINTENANCE:
  - None expected.
*/

package solver

import (
	"os"
	"sync"
)

// TempFiler is the temp-file authority the command builder consumes.
type TempFiler interface {
	CreateTempFile(suffix string) (string, error)
}

// TempFileManager creates suffix-tagged temp files and tracks them for
// later cleanup.
type TempFileManager struct {
	// Dir is the directory temp files are created in. Empty means the
	// system default.
	Dir string
	// Keep disables Cleanup, leaving files on disk for inspection.
	Keep bool

	mu      sync.Mutex
	created []string
}

// NewTempFileManager returns a manager rooted at dir.
func NewTempFileManager(dir string, keep bool) *TempFileManager {
	return &TempFileManager{Dir: dir, Keep: keep}
}

// CreateTempFile creates a fresh temp file whose name ends in suffix and
// returns its path. The file is left empty and closed.
func (m *TempFileManager) CreateTempFile(suffix string) (string, error) {
	f, err := os.CreateTemp(m.Dir, "solve-*"+suffix)
	if err != nil {
		return "", err
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", err
	}

	m.mu.Lock()
	m.created = append(m.created, path)
	m.mu.Unlock()

	return path, nil
}

// Created returns the paths handed out so far, oldest first.
func (m *TempFileManager) Created() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.created))
	copy(out, m.created)
	return out
}

// Cleanup removes every file the manager created. It is a no-op when Keep
// is set. The first removal error is returned, but removal continues past
// missing files.
func (m *TempFileManager) Cleanup() error {
	if m.Keep {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for _, path := range m.created {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	m.created = nil
	return firstErr
}
