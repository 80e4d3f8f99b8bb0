package proc

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// FateSharingAttrs returns SysProcAttr settings that make a spawned child die
// together with this process. The kernel delivers SIGKILL to the child when
// the spawning thread exits.
func FateSharingAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid:   true,
		Pdeathsig: unix.SIGKILL,
	}
}
