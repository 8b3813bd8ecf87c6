/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the solver against the configured problem files.

REQUIREMENTS:
  User-specified:
  - Run the solves.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.
  - Positional args are problem files, same as --problems.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  ipopt-runner run model.nl --option tol=1e-8

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daryltucker/ipopt-runner/internal/config"
	"github.com/daryltucker/ipopt-runner/internal/engine"
)

var (
	problemsOverride []string
	outputOverride   string
	execOverride     string
	timerOverride    string
	optionOverrides  []string
	timeoutOverride  time.Duration
	keepTempFiles    bool
)

var runCmd = &cobra.Command{
	Use:   "run [problem.nl ...]",
	Short: "Solve the configured problem files",
	Long: `Runs the IPOPT executable on one or more AMPL .nl problem files.
For each problem the runner:
1. Builds the command line, environment, and (if OF_* options are present) an options file.
2. Spawns the solver, capturing its output into a temp log file.
3. Reads the .sol solution file it leaves next to the problem file.

Results are saved to CSV and JSON Lines in the output directory.`,
	Example: `  # Solve with defaults (uses ipopt_runner.yaml)
  ipopt-runner run model.nl

  # Pass solver options; OF_* keys go to a generated options file
  ipopt-runner run model.nl --option tol=1e-8 --option OF_mu_init=0.1

  # Wrap the solver in a stopwatch utility
  ipopt-runner run model.nl --timer /usr/bin/time

  # Use an explicit executable and keep the temp files around
  ipopt-runner run model.nl --executable ~/bin/ipopt --keep-temp-files`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		// If err != nil here, it means user specified a file that didn't load, OR
		// parsing failed. config.Load handles "no file found" by returning defaults.
		if err != nil {
			return err
		}

		// 2. Overrides
		if len(args) > 0 {
			cfg.Problems = args
		}
		if len(problemsOverride) > 0 {
			cfg.Problems = problemsOverride
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if execOverride != "" {
			cfg.Executable = execOverride
		}
		if timerOverride != "" {
			cfg.Timer = timerOverride
		}
		if timeoutOverride > 0 {
			cfg.SolveTimeout = timeoutOverride
		}
		if keepTempFiles {
			cfg.KeepTempFiles = true
		}
		for _, kv := range optionOverrides {
			key, val, found := strings.Cut(kv, "=")
			if !found || key == "" {
				return fmt.Errorf("invalid --option %q, expected key=value", kv)
			}
			if cfg.Options == nil {
				cfg.Options = make(map[string]interface{})
			}
			// CLI values are passed through as typed strings; the
			// solver renders them verbatim.
			cfg.Options[key] = val
		}

		// 3. Execution
		return engine.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceVar(&problemsOverride, "problems", nil, "Comma-separated list of .nl problem files")
	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for results (CSV/JSON)")
	runCmd.Flags().StringVar(&execOverride, "executable", "", "Path to the IPOPT executable (overrides lookup)")
	runCmd.Flags().StringVar(&timerOverride, "timer", "", "Stopwatch utility to prepend to the invocation")
	runCmd.Flags().StringArrayVar(&optionOverrides, "option", nil, "Solver option key=value (repeatable; OF_* keys go to the options file)")
	runCmd.Flags().DurationVar(&timeoutOverride, "timeout", 0, "Per-solve timeout (e.g. 5m)")
	runCmd.Flags().BoolVar(&keepTempFiles, "keep-temp-files", false, "Do not delete temp log/options files after the run")
}
