// Package proc contains platform helpers for spawning and inspecting the
// backend child processes.
package proc

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// CommandLineContains reports whether the process with the given pid currently
// has a command line containing substr. A spawned child may be a shim that
// execs into the real server binary, so the command line of a live pid can
// change over time.
func CommandLineContains(ctx context.Context, pid int32, substr string) (bool, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return false, err
	}
	cmdline, err := p.CmdlineWithContext(ctx)
	if err != nil {
		return false, err
	}
	return strings.Contains(cmdline, substr), nil
}
