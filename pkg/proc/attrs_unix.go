//go:build !linux && !windows

package proc

import (
	"syscall"
)

// FateSharingAttrs returns SysProcAttr settings for platforms without a
// parent-death signal. The shutdown hook is the safety net here.
func FateSharingAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}
