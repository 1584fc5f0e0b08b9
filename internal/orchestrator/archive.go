package orchestrator

import (
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/envelope"
	"github.com/PolarWolf314/enchive-go/internal/keyfile"
)

const archiveSuffix = ".enchive"

// ArchiveOptions controls the archive command's input/output selection.
// Empty InFile/OutFile mean standard input/output, matching the CLI's
// optional positional arguments.
type ArchiveOptions struct {
	InFile  string
	OutFile string
	Delete  bool
}

// Archive implements the archive command: encrypt InFile (or stdin) to
// OutFile (or stdout, or an auto-derived "<input>.enchive") under the
// loaded public key. It returns the path actually written to, empty when
// the output was standard output.
func (ctx *Context) Archive(opts ArchiveOptions) (string, error) {
	public, err := keyfile.ReadPublicKey(ctx.PubKeyPath)
	if err != nil {
		return "", err
	}

	in, closeIn, err := openInput(opts.InFile)
	if err != nil {
		return "", err
	}
	defer closeIn()

	outPath := opts.OutFile
	if outPath == "" && opts.InFile != "" {
		outPath = opts.InFile + archiveSuffix
	}

	out, target, err := ctx.openOutput(outPath)
	if err != nil {
		return "", err
	}
	defer out.close()

	if err := envelope.Encrypt(out.writer, in, public, ctx.Entropy); err != nil {
		ctx.Release()
		return "", err
	}
	if err := out.close(); err != nil {
		ctx.Release()
		return "", err
	}
	if target != nil {
		target.Commit()
	}

	if opts.Delete && opts.InFile != "" {
		if err := os.Remove(opts.InFile); err != nil {
			return "", fmt.Errorf("%w: removing input %s after archive: %v", apperrors.ErrIO, opts.InFile, err)
		}
	}
	return outPath, nil
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening input %s: %v", apperrors.ErrIO, path, err)
	}
	return f, f.Close, nil
}

// outputSink wraps either stdout (never a cleanup target, never truncated
// on close) or a freshly created file registered for cleanup-on-failure.
type outputSink struct {
	writer io.Writer
	file   *os.File
}

func (s *outputSink) close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	if err != nil {
		return fmt.Errorf("%w: closing output: %v", apperrors.ErrIO, err)
	}
	return nil
}

func (ctx *Context) openOutput(path string) (*outputSink, *cleanupTarget, error) {
	if path == "" {
		return &outputSink{writer: os.Stdout}, nil, nil
	}
	f, target, err := ctx.createOutput(path)
	if err != nil {
		return nil, nil, err
	}
	return &outputSink{writer: f, file: f}, target, nil
}
