/*
PURPOSE:
  Writes solve results to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Output to CSV.
  - Keep file handle open for flushing.

  Implementation-discovered:
  - Overwrite on each new run; versioning previous files is the
    caller's problem.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Use Mutex if concurrent writes are expected (Engine might be parallel).

USAGE:
  w, err := output.NewCSVWriter("results.csv")
  w.Write(result)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when Result struct changes.
*/

package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/daryltucker/ipopt-runner/internal/model"
)

// CSVWriter handles writing results to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	// Write Header
	header := []string{
		"id", "problem", "executable", "version", "timestamp",
		"status", "result_code", "exit_code", "duration_s",
		"variables", "constraints",
		"log_file", "solution_file",
		"message", "error",
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single result to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r model.Result) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		r.ID,
		r.Problem,
		r.Executable,
		r.Version,
		r.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		r.Status,
		fmt.Sprintf("%d", r.ResultCode),
		fmt.Sprintf("%d", r.ExitCode),
		fmt.Sprintf("%.4f", r.Duration.Seconds()),
		fmt.Sprintf("%d", r.Variables),
		fmt.Sprintf("%d", r.Constraints),
		r.LogFile,
		r.SolutionFile,
		r.Message,
		r.Error,
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
