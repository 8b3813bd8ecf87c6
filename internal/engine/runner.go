/*
PURPOSE:
  High-level runner that orchestrates a batch of solves.
  Loops through problem files, invokes the solver, records results.

REQUIREMENTS:
  User-specified:
  - Solve every configured problem file.
  - Log results to CSV/JSON.

  Implementation-discovered:
  - Needs to report progress to CLI.
  - Temp files (logs, options files) should be cleaned at the end of
    the batch unless the user asked to keep them.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/solver, internal/output

ERROR HANDLING:
  - Logs per-problem errors but continues (resilience).
  - A missing executable aborts the whole batch: nothing can run.

IMPLEMENTATION RULES:
  - Resolve the executable and probe its version once, up front.
  - Per problem: build command line -> execute -> read .sol -> record.

USAGE:
  engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/solver/command.go

MAINTENANCE:
  - Update iteration logic if parallelism is introduced.
*/

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/daryltucker/ipopt-runner/internal/config"
	"github.com/daryltucker/ipopt-runner/internal/model"
	"github.com/daryltucker/ipopt-runner/internal/output"
	"github.com/daryltucker/ipopt-runner/internal/solver"
)

// Engine drives solver subprocesses for a batch of problems.
type Engine struct {
	Config  *config.Config
	Temp    *solver.TempFileManager
	Builder *solver.CommandBuilder

	executable string
	version    string
}

// New creates a new Engine.
func New(cfg *config.Config) *Engine {
	temp := solver.NewTempFileManager(cfg.TempDir, cfg.KeepTempFiles)
	return &Engine{
		Config:  cfg,
		Temp:    temp,
		Builder: solver.NewCommandBuilder(temp),
	}
}

// Prepare resolves the solver executable and probes its version.
func (e *Engine) Prepare(ctx context.Context) error {
	path, err := solver.DefaultRegistry.Find("ipopt", e.Config.Executable)
	if err != nil {
		return err
	}
	e.executable = path

	v, err := solver.ProbeVersion(ctx, path)
	if err != nil {
		// Not fatal: some builds mangle the banner. The solve can
		// still proceed; the version column stays empty.
		output.Logger.Warn("could not determine solver version", "executable", path, "error", err)
		return nil
	}
	e.version = v.String()
	return nil
}

// SolveOne runs the solver on a single problem file.
func (e *Engine) SolveOne(ctx context.Context, problem string) (model.Result, error) {
	res := model.Result{
		ID:         uuid.NewString(),
		Problem:    problem,
		Executable: e.executable,
		Version:    e.version,
		Timestamp:  time.Now(),
	}

	opts, err := e.Config.SolverOptions()
	if err != nil {
		res.Error = err.Error()
		return res, err
	}

	inv := &solver.Invocation{
		Executable:    e.executable,
		ProblemFiles:  []string{problem},
		Options:       opts,
		Timer:         e.Config.Timer,
		ProblemFormat: solver.FormatNL,
		ResultsFormat: solver.FormatSOL,
	}

	plan, err := e.Builder.CreateCommandLine(inv)
	if err != nil {
		res.Error = err.Error()
		return res, err
	}
	res.LogFile = plan.LogFile
	res.SolutionFile = inv.SolutionFile

	solveCtx := ctx
	if e.Config.SolveTimeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, e.Config.SolveTimeout)
		defer cancel()
	}

	info, err := solver.Execute(solveCtx, plan)
	if info != nil {
		res.Duration = info.Duration
		res.ExitCode = info.ExitCode
	}
	if err != nil {
		res.Status = string(solver.StatusFailure)
		res.Error = err.Error()
		return res, err
	}

	sol, err := solver.ReadSolFile(inv.SolutionFile)
	if err != nil {
		res.Status = string(solver.StatusFailure)
		res.Error = err.Error()
		return res, err
	}

	res.Status = string(sol.Status)
	res.Message = sol.Message
	res.ResultCode = sol.ResultCode
	res.Variables = len(sol.Primals)
	res.Constraints = len(sol.Duals)
	return res, nil
}

// Run executes the full batch.
func Run(cfg *config.Config) error {
	e := New(cfg)
	defer func() {
		if err := e.Temp.Cleanup(); err != nil {
			output.Logger.Warn("temp file cleanup failed", "error", err)
		}
	}()

	ctx := context.Background()
	if err := e.Prepare(ctx); err != nil {
		return err
	}

	if len(cfg.Problems) == 0 {
		return fmt.Errorf("no problem files configured; set 'problems' in the config or pass them on the command line")
	}

	// Ensure output directory exists
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	// Setup Outputs
	csvPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath := filepath.Join(cfg.OutputDir, "solve_results.jsonl")
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()

	for _, problem := range cfg.Problems {
		output.Logger.Info("Solving", "problem", problem, "executable", e.executable)

		res, err := e.SolveOne(ctx, problem)
		if err != nil {
			output.Logger.Error("Solve failed", "problem", problem, "error", err)
			// Write the partial result anyway so the batch record is
			// complete, then move on.
		} else {
			output.Logger.Info("Solve finished",
				"problem", problem,
				"status", res.Status,
				"duration", res.Duration,
				"exit_code", res.ExitCode,
			)
		}

		if err := csvWriter.Write(res); err != nil {
			output.Logger.Error("Failed to write result to CSV", "error", err)
		}
		if err := jsonWriter.Write(res); err != nil {
			output.Logger.Error("Failed to write result to JSON", "error", err)
		}
	}

	return nil
}
