/*
PURPOSE:
  Builds the command line, environment, and auxiliary options file for an
  IPOPT invocation over the AMPL solver-library protocol.
  This is the core of the adapter: everything else is plumbing around it.

REQUIREMENTS:
  User-specified:
  - Invocation shape: [timer] <exe> <problem.nl> -AMPL [key=value ...]
  - Options starting with OF_ go into a generated options file, not the
    command line.
  - All options are mirrored into the <solver>_options environment
    variable (space-joined, string values with spaces double-quoted).
  - Solution file is <stem>.sol next to the problem file; the stem rule
    must match IPOPT's own naming bit-for-bit.

  Implementation-discovered:
  - option_file_name combined with OF_ options is ambiguous (overwrite?
    merge? mistake?) and must be rejected outright.
  - A stray ./ipopt.opt would normally be auto-discovered by IPOPT; when
    we write our own options file we warn that it is being shadowed.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Uses: internal/solver TempFiler, Options
  - Output consumed by: internal/solver/exec.go

ERROR HANDLING:
  - Format mismatch panics: that is adapter misconfiguration, not user
    input, and must never occur in correct usage.
  - Malformed or conflicting options return descriptive errors; no files
    are written and no partial plan is returned.

IMPLEMENTATION RULES:
  - Keep the two-branch extension-stripping rule exactly as IPOPT names
    its solution files: >2 dot-segments joins all but the last, exactly
    2 takes the first segment only.
  - The injected option_file_name=<tempfile> token is appended last so it
    wins over anything earlier in the list.
  - Quote values only in the environment representation; argv entries are
    single tokens already.

USAGE:
  b := solver.NewCommandBuilder(tempManager)
  plan, err := b.CreateCommandLine(inv)

SELF-HEALING INSTRUCTIONS:
  - If IPOPT grows new reserved option names, extend the classification
    switch in CreateCommandLine.

RELATED FILES:
  - internal/solver/options.go
  - internal/solver/exec.go

MAINTENANCE:
  - Update if the AMPL invocation protocol ever changes (unlikely).
*/

package solver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/ipopt-runner/internal/output"
)

// Format identifies a problem or results file format. This adapter supports
// exactly one of each: AMPL .nl in, AMPL .sol out.
type Format int

const (
	FormatNL Format = iota
	FormatSOL
)

const (
	// amplFlag tells the solver it is being driven by an AMPL-style host.
	amplFlag = "-AMPL"
	// filePrefix marks options destined for the generated options file.
	filePrefix = "OF_"
	// optionFileKey is IPOPT's own name for the options-file override.
	optionFileKey = "option_file_name"
	// defaultOptionsFile is the file IPOPT discovers on its own in the cwd.
	defaultOptionsFile = "ipopt.opt"
	// defaultSolverName names the _options env var when no solver option
	// is supplied.
	defaultSolverName = "ipopt"

	logSuffix     = "_ipopt.log"
	optionsSuffix = "_ipopt.opt"
	solSuffix     = ".sol"
)

// Invocation is one solve request plus the file-path state cached across
// repeated CreateCommandLine calls on the same request.
type Invocation struct {
	Executable   string
	ProblemFiles []string
	Options      *Options
	// Timer, when set, is prepended to the command line so an external
	// stopwatch utility wraps the solver.
	Timer string

	ProblemFormat Format
	ResultsFormat Format

	// LogFile is assigned on first build and reused afterwards.
	LogFile string
	// SolutionFile and ResultsFile are derived from the first problem
	// file; for this adapter they are always identical.
	SolutionFile string
	ResultsFile  string
}

// Plan is everything the process executor needs to spawn the solver.
type Plan struct {
	Cmd     []string
	LogFile string
	Env     map[string]string
}

// CommandBuilder turns an Invocation into a Plan. The filesystem probe and
// environment snapshot are injectable so tests never touch the real cwd or
// process environment.
type CommandBuilder struct {
	Temp TempFiler
	// FileExists reports whether a path exists. Defaults to an os.Stat
	// probe.
	FileExists func(string) bool
	// Environ returns the ambient environment as "k=v" pairs. Defaults
	// to os.Environ.
	Environ func() []string
}

// NewCommandBuilder returns a builder backed by the real filesystem and
// process environment.
func NewCommandBuilder(temp TempFiler) *CommandBuilder {
	return &CommandBuilder{Temp: temp}
}

func (b *CommandBuilder) fileExists(path string) bool {
	if b.FileExists != nil {
		return b.FileExists(path)
	}
	_, err := os.Stat(path)
	return err == nil
}

func (b *CommandBuilder) environ() []string {
	if b.Environ != nil {
		return b.Environ()
	}
	return os.Environ()
}

// solutionStem strips one trailing extension segment from the first problem
// file. The two branches coincide on well-formed names but both are kept:
// IPOPT derives its .sol name the same way and the outputs must match.
func solutionStem(fname string) string {
	if !strings.Contains(fname, ".") {
		return fname
	}
	parts := strings.Split(fname, ".")
	if len(parts) > 2 {
		return strings.Join(parts[:len(parts)-1], ".")
	}
	return parts[0]
}

// CreateCommandLine builds the argument vector, environment, and log-file
// path for inv, writing an options file when OF_ options are present.
// It mutates only inv's cached file-path fields; the ambient environment is
// copied, never modified.
func (b *CommandBuilder) CreateCommandLine(inv *Invocation) (*Plan, error) {
	if inv.ProblemFormat != FormatNL || inv.ResultsFormat != FormatSOL {
		panic("solver: IPOPT adapter only supports NL problems and SOL results")
	}

	if inv.LogFile == "" {
		logFile, err := b.Temp.CreateTempFile(logSuffix)
		if err != nil {
			return nil, err
		}
		inv.LogFile = logFile
	}

	inv.SolutionFile = solutionStem(inv.ProblemFiles[0]) + solSuffix
	// An external parser reads the results, so the results file is just
	// the solution file.
	inv.ResultsFile = inv.SolutionFile

	cmd := []string{inv.Executable, inv.ProblemFiles[0], amplFlag}
	if inv.Timer != "" {
		cmd = append([]string{inv.Timer}, cmd...)
	}

	var (
		envOpts    []string
		fileOpts   [][2]string
		ofnoption  bool
		solverName = defaultSolverName
	)

	if inv.Options != nil {
		for _, key := range inv.Options.Keys() {
			val, _ := inv.Options.Get(key)
			switch {
			case key == "solver":
				// Reserved: names the _options env var, never
				// passed through.
				solverName = val.Render()
				continue
			case strings.HasPrefix(key, filePrefix):
				if len(key) <= len(filePrefix) {
					return nil, &badOptionError{Key: key,
						Reason: "nothing after the OF_ prefix"}
				}
				fileOpts = append(fileOpts, [2]string{key[len(filePrefix):], val.Render()})
			default:
				if key == optionFileKey {
					ofnoption = true
				}
				rendered := val.Render()
				if val.NeedsQuoting() {
					envOpts = append(envOpts, key+"=\""+rendered+"\"")
					cmd = append(cmd, key+"="+rendered)
				} else if key == "subsolver" {
					// IPOPT's sub-solver selection is exposed
					// under a friendlier name but travels as
					// "solver" on the wire.
					envOpts = append(envOpts, "solver="+rendered)
					cmd = append(cmd, "solver="+rendered)
				} else {
					envOpts = append(envOpts, key+"="+rendered)
					cmd = append(cmd, key+"="+rendered)
				}
			}
		}
	}

	if len(fileOpts) > 0 {
		// We don't know whether the caller meant to overwrite the
		// named file, merge into it, or made a mistake. Refuse.
		if ofnoption {
			return nil, ErrOptionFileConflict
		}

		if cwd, err := os.Getwd(); err == nil {
			existing := filepath.Join(cwd, defaultOptionsFile)
			if b.fileExists(existing) {
				output.Logger.Warn(
					"an ipopt.opt file exists in the working directory but options-file options (OF_*) were provided; it will be ignored",
					"path", existing)
			}
		}

		optionsFile, err := b.Temp.CreateTempFile(optionsSuffix)
		if err != nil {
			return nil, err
		}
		var sb strings.Builder
		for _, kv := range fileOpts {
			sb.WriteString(kv[0])
			sb.WriteString(" ")
			sb.WriteString(kv[1])
			sb.WriteString("\n")
		}
		if err := os.WriteFile(optionsFile, []byte(sb.String()), 0644); err != nil {
			return nil, fmt.Errorf("failed to write options file %s: %w", optionsFile, err)
		}

		// Appended last so it takes precedence over anything earlier.
		envOpts = append(envOpts, optionFileKey+"=\""+optionsFile+"\"")
		cmd = append(cmd, optionFileKey+"="+optionsFile)
	}

	env := make(map[string]string)
	for _, kv := range b.environ() {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	env[solverName+"_options"] = strings.Join(envOpts, " ")

	return &Plan{Cmd: cmd, LogFile: inv.LogFile, Env: env}, nil
}
