//go:build windows

package orchestrator

import "syscall"

// detachedAttr is unused on Windows: SpawnAgent returns before it would be
// called, since the agent is not implemented on this platform.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{}
}
