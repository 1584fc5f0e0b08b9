//go:build !windows

package orchestrator

import "syscall"

// detachedAttr detaches the spawned agent from the parent's process group
// and controlling terminal, so it keeps running after the command that
// launched it exits.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
