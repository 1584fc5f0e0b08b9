package orchestrator

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
)

// createOutput opens path for writing, truncating any existing content,
// and registers it as a cleanup target: the returned target must be
// committed once the command using it fully succeeds, or the file is
// removed when ctx.Release runs on the fatal-exit path.
func (ctx *Context) createOutput(path string) (*os.File, *cleanupTarget, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening %s for writing: %v", apperrors.ErrIO, path, err)
	}
	return f, ctx.cleanup.Register(path), nil
}

// Release removes every cleanup target registered during the current
// command that was never committed. Call this on any error return from a
// command; it is a no-op once every target has been committed. A removal
// that itself fails is logged rather than silently swallowed, since it
// leaves a file on disk the caller believes was cleaned up.
func (ctx *Context) Release() {
	ctx.cleanup.Release(func(path string, err error) {
		ctx.Logger.Errorf("cleanup: removing %s: %v", path, err)
	})
}
