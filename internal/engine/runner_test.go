package engine

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/daryltucker/ipopt-runner/internal/config"
)

// stubSolver is a shell script that mimics the solver's contract: answer -v
// with a banner, otherwise write a .sol file next to the problem file.
const stubSolver = `#!/bin/sh
if [ "$1" = "-v" ]; then
    echo "stub 1.2.3"
    exit 0
fi
prob="$1"
stem="${prob%.*}"
cat > "$stem.sol" <<'EOF'
stub: optimal solution found

Options
3
1
1
0
0 0
2 2
1
2
objno 0 0
EOF
echo "stub ran on $prob"
`

func writeStubSolver(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "ipopt-stub")
	if err := os.WriteFile(path, []byte(stubSolver), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSolveOneAgainstStub(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub solver is a shell script")
	}

	dir := t.TempDir()
	exe := writeStubSolver(t, dir)
	problem := filepath.Join(dir, "model.nl")
	if err := os.WriteFile(problem, []byte("g3 1 1 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Executable = exe
	cfg.TempDir = dir
	cfg.SolveTimeout = 30 * time.Second

	e := New(cfg)
	defer e.Temp.Cleanup()

	ctx := context.Background()
	if err := e.Prepare(ctx); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if e.version != "1.2.3" {
		t.Errorf("probed version = %q, want 1.2.3", e.version)
	}

	res, err := e.SolveOne(ctx, problem)
	if err != nil {
		t.Fatalf("SolveOne: %v", err)
	}

	if res.Status != "solved" {
		t.Errorf("Status = %q, want solved", res.Status)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d", res.ExitCode)
	}
	if res.Variables != 2 || res.Constraints != 0 {
		t.Errorf("Variables/Constraints = %d/%d, want 2/0", res.Variables, res.Constraints)
	}
	if res.SolutionFile != strings.TrimSuffix(problem, ".nl")+".sol" {
		t.Errorf("SolutionFile = %q", res.SolutionFile)
	}
	if res.ID == "" {
		t.Error("missing run ID")
	}

	logData, err := os.ReadFile(res.LogFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(logData), "stub ran on "+problem) {
		t.Errorf("log file missing solver output: %q", logData)
	}
}

func TestRunWritesOutputs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub solver is a shell script")
	}

	dir := t.TempDir()
	exe := writeStubSolver(t, dir)
	problem := filepath.Join(dir, "model.nl")
	if err := os.WriteFile(problem, []byte("g3 1 1 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Executable = exe
	cfg.TempDir = dir
	cfg.Problems = []string{problem}
	cfg.OutputDir = filepath.Join(dir, "out")

	if err := Run(cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	f, err := os.Open(filepath.Join(cfg.OutputDir, cfg.OutputFile))
	if err != nil {
		t.Fatalf("opening CSV: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("CSV rows = %d, want header + 1 result", len(rows))
	}
	// status column follows id, problem, executable, version, timestamp.
	if rows[1][5] != "solved" {
		t.Errorf("status column = %q, want solved", rows[1][5])
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "solve_results.jsonl")); err != nil {
		t.Errorf("missing JSONL output: %v", err)
	}
}

func TestRunNoProblemsFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub solver is a shell script")
	}

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Executable = writeStubSolver(t, dir)
	cfg.OutputDir = dir

	if err := Run(cfg); err == nil {
		t.Fatal("expected error when no problems are configured")
	}
}
