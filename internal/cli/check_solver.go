/*
PURPOSE:
  Defines the 'check-solver' subcommand.
  Helps debug executable resolution and version detection.

REQUIREMENTS:
  User-specified:
  - Verify the solver is installed before a long batch.

  Implementation-discovered:
  - Useful validation step before full run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/solver (Registry, ProbeVersion)

ERROR HANDLING:
  - Prints error if the executable is missing or mute.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  ipopt-runner check-solver --executable ~/bin/ipopt

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/solver/executable.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/ipopt-runner/internal/solver"
)

var checkSolverCmd = &cobra.Command{
	Use:   "check-solver",
	Short: "Verify the IPOPT executable is available and report its version",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := solver.DefaultRegistry.Find("ipopt", execOverride)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		fmt.Printf("Executable: %s\n", path)

		v, err := solver.ProbeVersion(context.Background(), path)
		if err != nil {
			// Still usable; some builds just don't print a clean banner.
			fmt.Fprintf(os.Stderr, "Warning: could not determine version: %v\n", err)
			return nil
		}
		fmt.Printf("Version: %s\n", v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkSolverCmd)
	// `executable` is shared with run; defined there, reused here.
	// If more commands need it, move it to Persistent on root.
	checkSolverCmd.Flags().StringVar(&execOverride, "executable", "", "Path to the IPOPT executable (overrides lookup)")
}
