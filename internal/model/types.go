/*
PURPOSE:
  Defines the core data structures used throughout ipopt-runner.
  These models represent the outcome of individual solver runs.

REQUIREMENTS:
  User-specified:
  - Record solve status, solver message, durations, and file locations.
  - Track which problem and executable produced each record.

  Implementation-discovered:
  - Need JSON tags for the NDJSON output.
  - A per-run ID makes rows from repeated batches distinguishable.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Use time.Time and time.Duration for high precision.

USAGE:
  res := model.Result{...}

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add here and update CSV/JSON writers.

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update when capturing new solve metadata.
*/

package model

import (
	"time"
)

// Result represents the outcome of a single solver run.
type Result struct {
	ID         string    `json:"id"` // uuid, unique per run
	Problem    string    `json:"problem"`
	Executable string    `json:"executable"`
	Version    string    `json:"version,omitempty"`
	Timestamp  time.Time `json:"timestamp"`

	Status     string `json:"status"`
	Message    string `json:"message,omitempty"` // solver's own message block
	ResultCode int    `json:"result_code"`
	ExitCode   int    `json:"exit_code"`

	Duration time.Duration `json:"duration"`

	LogFile      string `json:"log_file"`
	SolutionFile string `json:"solution_file"`

	Variables   int `json:"variables"`   // primal values reported
	Constraints int `json:"constraints"` // dual values reported

	Error string `json:"error,omitempty"` // if the run failed outright
}
