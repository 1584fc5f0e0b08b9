package orchestrator

import "os"

// cleanupStack is a small list of output paths acquired during a command,
// kept in registration order.
// Each target starts "pending"; a target is either committed (kept) or,
// on any fatal error along the way, released (deleted). The commit
// transition happens at most once per target, after the command's full
// success — this is the "delete unless committed" discipline the design
// notes ask for in place of a real transaction log.
type cleanupStack struct {
	targets []*cleanupTarget
}

type cleanupTarget struct {
	path      string
	committed bool
}

// Register adds path as a cleanup target and returns a handle used to
// commit it once the command that created it has fully succeeded.
func (c *cleanupStack) Register(path string) *cleanupTarget {
	t := &cleanupTarget{path: path}
	c.targets = append(c.targets, t)
	return t
}

// Commit marks a target as done: it will not be removed by Release.
func (t *cleanupTarget) Commit() {
	if t != nil {
		t.committed = true
	}
}

// Release deletes every registered target that was never committed. It is
// called on the orchestrator's fatal-exit path, and is a no-op for targets
// that were already committed or never existed on disk. onError, if
// non-nil, is called for any removal that fails so the caller can log it
// without changing Release's own no-return-value contract.
func (c *cleanupStack) Release(onError func(path string, err error)) {
	for _, t := range c.targets {
		if t.committed {
			continue
		}
		if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) && onError != nil {
			onError(t.path, err)
		}
	}
}
