package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	// Run from an empty directory so no default config file is found.
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SolveTimeout != 10*time.Minute {
		t.Errorf("SolveTimeout = %v, want 10m", cfg.SolveTimeout)
	}
	if cfg.Options["solver"] != "ipopt" {
		t.Errorf("default solver option = %v, want ipopt", cfg.Options["solver"])
	}
}

func TestLoadFile(t *testing.T) {
	content := `
executable: /opt/bin/ipopt
timer: /usr/bin/time
problems:
  - model.nl
  - batch/big.nl
options:
  tol: 1e-8
  max_iter: 500
  honor_original_bounds: true
  linear_solver: ma27
solve_timeout: 5m
output_dir: ./out
keep_temp_files: true
`
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Executable != "/opt/bin/ipopt" || cfg.Timer != "/usr/bin/time" {
		t.Errorf("executable/timer = %q/%q", cfg.Executable, cfg.Timer)
	}
	if len(cfg.Problems) != 2 || cfg.Problems[1] != "batch/big.nl" {
		t.Errorf("Problems = %v", cfg.Problems)
	}
	if cfg.SolveTimeout != 5*time.Minute {
		t.Errorf("SolveTimeout = %v", cfg.SolveTimeout)
	}
	if !cfg.KeepTempFiles {
		t.Error("KeepTempFiles not set")
	}
}

func TestSolverOptionsTyped(t *testing.T) {
	cfg := &Config{Options: map[string]interface{}{
		"tol":        1e-8,
		"max_iter":   500,
		"mu_init":    0.1,
		"warm_start": true,
		"solver":     "ipopt",
	}}

	opts, err := cfg.SolverOptions()
	if err != nil {
		t.Fatalf("SolverOptions: %v", err)
	}

	want := map[string]string{
		"tol":        "1e-08",
		"max_iter":   "500",
		"mu_init":    "0.1",
		"warm_start": "yes",
		"solver":     "ipopt",
	}
	for k, rendered := range want {
		v, ok := opts.Get(k)
		if !ok {
			t.Errorf("missing option %q", k)
			continue
		}
		if got := v.Render(); got != rendered {
			t.Errorf("option %q renders %q, want %q", k, got, rendered)
		}
	}

	// Keys come out sorted for deterministic runs.
	keys := opts.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Errorf("keys not sorted: %v", keys)
			break
		}
	}
}

func TestSolverOptionsRejectsUnknownType(t *testing.T) {
	cfg := &Config{Options: map[string]interface{}{
		"weird": []interface{}{1, 2},
	}}
	if _, err := cfg.SolverOptions(); err == nil {
		t.Fatal("expected error for unsupported option type")
	}
}
