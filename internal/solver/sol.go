/*
PURPOSE:
  Minimal reader for AMPL .sol solution files.
  Pulls out the solver's message, the dual/primal vectors, and the
  solve-result code so the engine can report an outcome.

REQUIREMENTS:
  User-specified:
  - Report solved / infeasible / unbounded / limit / failure per run.

  Implementation-discovered:
  - The .sol layout is: free-text message, blank line, "Options",
    an option count and that many integers, two "<total> <read>" count
    lines (constraints/duals then variables/primals), the vectors, and
    a trailing "objno 0 <code>".
  - The solve-result code ranges are conventional: 0-99 solved,
    100-199 solved to acceptable level, 200-299 infeasible,
    300-399 unbounded, 400-499 limit, 500+ failure.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Pure parsing, no subprocess knowledge.

ERROR HANDLING:
  - Structural problems (missing Options block, short vectors) are
    errors; an absent file usually means the solver died before writing.

IMPLEMENTATION RULES:
  - Line-oriented scan, tolerant of trailing noise after objno.

USAGE:
  sol, err := solver.ReadSolFile("model.sol")

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/solver/exec.go
  - internal/model/types.go

MAINTENANCE:
  - Extend if suffix values (.sol "suffix" sections) are ever needed.
*/

package solver

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SolveStatus classifies the solver's reported outcome.
type SolveStatus string

const (
	StatusSolved     SolveStatus = "solved"
	StatusAcceptable SolveStatus = "acceptable"
	StatusInfeasible SolveStatus = "infeasible"
	StatusUnbounded  SolveStatus = "unbounded"
	StatusLimit      SolveStatus = "limit"
	StatusFailure    SolveStatus = "failure"
	StatusUnknown    SolveStatus = "unknown"
)

// statusFromCode maps an AMPL solve_result_num to a status.
func statusFromCode(code int) SolveStatus {
	switch {
	case code < 0:
		return StatusUnknown
	case code < 100:
		return StatusSolved
	case code < 200:
		return StatusAcceptable
	case code < 300:
		return StatusInfeasible
	case code < 400:
		return StatusUnbounded
	case code < 500:
		return StatusLimit
	default:
		return StatusFailure
	}
}

// Solution is the subset of a .sol file this runner reports on.
type Solution struct {
	Message    string
	Duals      []float64
	Primals    []float64
	ResultCode int
	Status     SolveStatus
}

// ReadSolFile parses path as an AMPL .sol file.
func ReadSolFile(path string) (*Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening solution file %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	sol := &Solution{ResultCode: -1, Status: StatusUnknown}

	// Message block: everything up to the "Options" marker.
	var msg []string
	foundOptions := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "Options" {
			foundOptions = true
			break
		}
		msg = append(msg, line)
	}
	sol.Message = strings.TrimSpace(strings.Join(msg, "\n"))
	if !foundOptions {
		return nil, errors.Errorf("%s: no Options block; not a .sol file?", path)
	}

	nextInt := func(what string) (int, error) {
		for scanner.Scan() {
			s := strings.TrimSpace(scanner.Text())
			if s == "" {
				continue
			}
			// Count lines look like "<total> <reported>"; the
			// first field is what we want.
			fields := strings.Fields(s)
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return 0, errors.Wrapf(err, "%s: reading %s", path, what)
			}
			return n, nil
		}
		return 0, errors.Errorf("%s: truncated while reading %s", path, what)
	}

	numOpts, err := nextInt("option count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numOpts; i++ {
		if _, err := nextInt("option value"); err != nil {
			return nil, err
		}
	}

	// "<constraints> <duals-written>" then "<variables> <primals-written>".
	var counts [2][2]int
	for i := range counts {
		if !scanner.Scan() {
			return nil, errors.Errorf("%s: truncated before count lines", path)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			return nil, errors.Errorf("%s: malformed count line %q", path, scanner.Text())
		}
		for j := 0; j < 2; j++ {
			counts[i][j], err = strconv.Atoi(fields[j])
			if err != nil {
				return nil, errors.Wrapf(err, "%s: malformed count line %q", path, scanner.Text())
			}
		}
	}

	readVector := func(n int, what string) ([]float64, error) {
		vec := make([]float64, 0, n)
		for len(vec) < n && scanner.Scan() {
			s := strings.TrimSpace(scanner.Text())
			if s == "" {
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: bad %s value", path, what)
			}
			vec = append(vec, v)
		}
		if len(vec) < n {
			return nil, errors.Errorf("%s: truncated %s vector (%d of %d)", path, what, len(vec), n)
		}
		return vec, nil
	}

	if sol.Duals, err = readVector(counts[0][1], "dual"); err != nil {
		return nil, err
	}
	if sol.Primals, err = readVector(counts[1][1], "primal"); err != nil {
		return nil, err
	}

	// Trailing "objno 0 <code>"; anything after it is ignored.
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 3 && fields[0] == "objno" {
			code, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "%s: malformed objno line", path)
			}
			sol.ResultCode = code
			sol.Status = statusFromCode(code)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if sol.ResultCode == -1 {
		// Old-style .sol files omit objno; the message is all we have.
		sol.Status = StatusUnknown
	}
	return sol, nil
}
