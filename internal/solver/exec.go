/*
PURPOSE:
  Spawns the solver subprocess described by a Plan and captures its
  output into the plan's log file.

REQUIREMENTS:
  User-specified:
  - Solver stdout/stderr must end up in the log file for later triage.
  - A per-solve timeout.

  Implementation-discovered:
  - IPOPT signals most failures through the .sol file, not the exit
    code, so a nonzero exit is recorded rather than short-circuiting.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: solver.Plan (from command.go)

ERROR HANDLING:
  - Spawn failures (bad path, permissions) are errors.
  - Nonzero exits are NOT errors here: the exit code travels in RunInfo
    and the .sol reader decides what it means.
  - Timeouts surface as context.DeadlineExceeded wrapped with the
    command.

IMPLEMENTATION RULES:
  - No retries. If retry policy ever exists it belongs to the engine.
  - The plan's env map is flattened to k=v pairs for exec.Cmd.

USAGE:
  info, err := solver.Execute(ctx, plan)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/solver/command.go
  - internal/solver/sol.go

MAINTENANCE:
  - None expected.
*/

package solver

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

// RunInfo describes one finished solver subprocess.
type RunInfo struct {
	ExitCode int
	Duration time.Duration
	LogFile  string
}

// Execute runs the plan's command with the plan's environment, teeing
// combined output into the plan's log file. Cancellation and timeouts come
// from ctx; the executor itself never retries.
func Execute(ctx context.Context, plan *Plan) (*RunInfo, error) {
	logFile, err := os.Create(plan.LogFile)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", plan.LogFile)
	}
	defer logFile.Close()

	cmd := exec.CommandContext(ctx, plan.Cmd[0], plan.Cmd[1:]...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	env := make([]string, 0, len(plan.Env))
	for k, v := range plan.Env {
		env = append(env, k+"="+v)
	}
	cmd.Env = env

	start := time.Now()
	err = cmd.Run()
	info := &RunInfo{
		Duration: time.Since(start),
		LogFile:  plan.LogFile,
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The solver ran and exited; the .sol file is the
			// real verdict.
			info.ExitCode = exitErr.ExitCode()
			if ctxErr := ctx.Err(); ctxErr != nil {
				return info, errors.Wrapf(ctxErr, "solver %s timed out or was canceled", plan.Cmd[0])
			}
			return info, nil
		}
		return nil, errors.Wrapf(err, "spawning %s", plan.Cmd[0])
	}

	return info, nil
}
