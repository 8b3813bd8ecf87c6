/*
PURPOSE:
  Resolves the solver executable to run.
  Keeps a small registry of known solver names so callers can register
  explicit paths, falling back to a $PATH lookup.

REQUIREMENTS:
  User-specified:
  - Config may pin an explicit executable path.
  - Otherwise find "ipopt" on $PATH.

  Implementation-discovered:
  - A missing executable is a normal user environment problem, not a
    crash: warn and return a typed error the CLI can explain.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Uses: os/exec

ERROR HANDLING:
  - Returns ErrSolverNotFound (wrapped with the name) when resolution
    fails.

IMPLEMENTATION RULES:
  - Resolution order: explicit override > registered path > $PATH.

USAGE:
  path, err := solver.DefaultRegistry.Find("ipopt", cfg.Executable)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/solver/version.go

MAINTENANCE:
  - None expected.
*/

package solver

import (
	"os/exec"
	"sync"

	"github.com/pkg/errors"

	"github.com/daryltucker/ipopt-runner/internal/output"
)

// Registry maps solver names to resolved executable paths.
type Registry struct {
	mu    sync.Mutex
	paths map[string]string
}

// DefaultRegistry is the process-wide registry. The ipopt name is known
// from the start; its path is resolved lazily.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{paths: make(map[string]string)}
}

// Register pins an executable path for a solver name, overriding any
// previous registration.
func (r *Registry) Register(name, path string) {
	r.mu.Lock()
	r.paths[name] = path
	r.mu.Unlock()
}

// Find resolves the executable for name. A non-empty override wins; then a
// registered path; then $PATH. A failed resolution is logged as a warning
// and returned as ErrSolverNotFound so the caller can disable the solver.
func (r *Registry) Find(name, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	r.mu.Lock()
	path, ok := r.paths[name]
	r.mu.Unlock()
	if ok {
		return path, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		output.Logger.Warn("could not locate solver executable", "solver", name, "error", err)
		return "", errors.Wrap(ErrSolverNotFound, name)
	}

	r.mu.Lock()
	r.paths[name] = path
	r.mu.Unlock()
	return path, nil
}
