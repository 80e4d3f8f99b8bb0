//go:build windows

package proc

import (
	"syscall"
)

func FateSharingAttrs() *syscall.SysProcAttr {
	return nil
}
