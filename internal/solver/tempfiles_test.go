package solver

import (
	"os"
	"strings"
	"testing"
)

func TestTempFileManagerCreateAndCleanup(t *testing.T) {
	tm := NewTempFileManager(t.TempDir(), false)

	log, err := tm.CreateTempFile("_ipopt.log")
	if err != nil {
		t.Fatalf("CreateTempFile: %v", err)
	}
	opt, err := tm.CreateTempFile("_ipopt.opt")
	if err != nil {
		t.Fatalf("CreateTempFile: %v", err)
	}

	if !strings.HasSuffix(log, "_ipopt.log") || !strings.HasSuffix(opt, "_ipopt.opt") {
		t.Errorf("suffixes not applied: %q %q", log, opt)
	}
	for _, p := range []string{log, opt} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("temp file %q not on disk: %v", p, err)
		}
	}
	if got := tm.Created(); len(got) != 2 {
		t.Errorf("Created() = %v, want 2 entries", got)
	}

	if err := tm.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	for _, p := range []string{log, opt} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("temp file %q survived cleanup", p)
		}
	}
	if got := tm.Created(); len(got) != 0 {
		t.Errorf("Created() after cleanup = %v, want empty", got)
	}
}

func TestTempFileManagerKeep(t *testing.T) {
	tm := NewTempFileManager(t.TempDir(), true)
	path, err := tm.CreateTempFile(".log")
	if err != nil {
		t.Fatalf("CreateTempFile: %v", err)
	}
	if err := tm.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("keep-mode cleanup removed %q", path)
	}
}

func TestTempFileManagerCleanupTolerant(t *testing.T) {
	tm := NewTempFileManager(t.TempDir(), false)
	path, err := tm.CreateTempFile(".log")
	if err != nil {
		t.Fatalf("CreateTempFile: %v", err)
	}
	os.Remove(path) // someone else got there first

	if err := tm.Cleanup(); err != nil {
		t.Errorf("Cleanup should ignore already-missing files: %v", err)
	}
}
