/*
PURPOSE:
  Probes the solver executable for its version.
  Runs `<exe> -v` with a short timeout and scrapes the banner.

REQUIREMENTS:
  User-specified:
  - check-solver should report which IPOPT is installed.

  Implementation-discovered:
  - IPOPT prints something like "Ipopt 3.14.16" on the first line.
  - Some builds print extra ASL noise; scrape with a regex rather than
    parsing positionally.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli/check_solver.go, internal/engine
  - Uses: os/exec, context

ERROR HANDLING:
  - A dead or silent executable yields (Version{}, false) from the
    extractor; Probe wraps spawn errors.

IMPLEMENTATION RULES:
  - 1 second timeout: a version probe must never hang a run.

USAGE:
  v, err := solver.ProbeVersion(ctx, "/usr/bin/ipopt")

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/solver/executable.go

MAINTENANCE:
  - None expected.
*/

package solver

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Version is a solver executable version. Unset components are zero.
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ExtractVersion scrapes the first dotted version number out of a banner.
// ok is false when no version-shaped token is present.
func ExtractVersion(banner string) (v Version, ok bool) {
	m := versionPattern.FindStringSubmatch(banner)
	if m == nil {
		return Version{}, false
	}
	v.Major, _ = strconv.Atoi(m[1])
	v.Minor, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		v.Patch, _ = strconv.Atoi(m[3])
	}
	return v, true
}

const versionProbeTimeout = 1 * time.Second

// ProbeVersion runs the executable with -v and extracts its version.
func ProbeVersion(ctx context.Context, executable string) (Version, error) {
	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, executable, "-v").CombinedOutput()
	if err != nil && len(out) == 0 {
		return Version{}, errors.Wrapf(err, "running %s -v", executable)
	}

	v, ok := ExtractVersion(string(out))
	if !ok {
		return Version{}, errors.Errorf("no version in output of %s -v: %q", executable, out)
	}
	return v, nil
}
