package solver

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSol(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.sol")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const optimalSol = `Ipopt 3.14.16: Optimal Solution Found

Options
3
1
1
0
2 2
3 3
1.5
-0.5
1
2
3
objno 0 0
`

func TestReadSolFileOptimal(t *testing.T) {
	sol, err := ReadSolFile(writeSol(t, optimalSol))
	if err != nil {
		t.Fatalf("ReadSolFile: %v", err)
	}

	if sol.Message != "Ipopt 3.14.16: Optimal Solution Found" {
		t.Errorf("Message = %q", sol.Message)
	}
	if sol.ResultCode != 0 || sol.Status != StatusSolved {
		t.Errorf("code/status = %d/%s, want 0/solved", sol.ResultCode, sol.Status)
	}
	if len(sol.Duals) != 2 || sol.Duals[0] != 1.5 || sol.Duals[1] != -0.5 {
		t.Errorf("Duals = %v", sol.Duals)
	}
	if len(sol.Primals) != 3 || sol.Primals[2] != 3 {
		t.Errorf("Primals = %v", sol.Primals)
	}
}

func TestReadSolFileInfeasible(t *testing.T) {
	content := `Ipopt 3.14.16: Converged to a locally infeasible point.

Options
3
1
1
0
0 0
1 1
0.5
objno 0 200
`
	sol, err := ReadSolFile(writeSol(t, content))
	if err != nil {
		t.Fatalf("ReadSolFile: %v", err)
	}
	if sol.Status != StatusInfeasible || sol.ResultCode != 200 {
		t.Errorf("status/code = %s/%d, want infeasible/200", sol.Status, sol.ResultCode)
	}
}

func TestReadSolFileNoOptionsBlock(t *testing.T) {
	if _, err := ReadSolFile(writeSol(t, "just some text\n")); err == nil {
		t.Fatal("expected error for file without Options block")
	}
}

func TestReadSolFileTruncatedVector(t *testing.T) {
	content := `msg

Options
3
1
1
0
0 0
3 3
1
2
`
	if _, err := ReadSolFile(writeSol(t, content)); err == nil {
		t.Fatal("expected error for truncated primal vector")
	}
}

func TestReadSolFileMissing(t *testing.T) {
	if _, err := ReadSolFile(filepath.Join(t.TempDir(), "nope.sol")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStatusFromCode(t *testing.T) {
	cases := []struct {
		code int
		want SolveStatus
	}{
		{0, StatusSolved},
		{99, StatusSolved},
		{100, StatusAcceptable},
		{200, StatusInfeasible},
		{300, StatusUnbounded},
		{400, StatusLimit},
		{520, StatusFailure},
		{-1, StatusUnknown},
	}
	for _, tc := range cases {
		if got := statusFromCode(tc.code); got != tc.want {
			t.Errorf("statusFromCode(%d) = %s, want %s", tc.code, got, tc.want)
		}
	}
}
