package orchestrator

import (
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/envelope"
	"github.com/PolarWolf314/enchive-go/internal/primitives"
)

// ExtractOptions controls the extract command's input/output selection.
type ExtractOptions struct {
	InFile  string
	OutFile string
	Delete  bool
}

// Extract implements the extract command: decrypt InFile (or stdin) to
// OutFile (or stdout, or the input filename with its ".enchive" suffix
// stripped) using the secret key loaded from ctx.SecKeyPath.
//
// Per the envelope's decrypt guarantee, bytes written before an
// authentication failure is detected are provisional; on any error the
// output file is unlinked via the cleanup stack rather than left partially
// written. It returns the path actually written to, empty when the output
// was standard output.
func (ctx *Context) Extract(opts ExtractOptions) (string, error) {
	secret, err := ctx.loadSecretKey()
	if err != nil {
		return "", err
	}
	defer primitives.Zero(secret[:])

	in, closeIn, err := openInput(opts.InFile)
	if err != nil {
		return "", err
	}
	defer closeIn()

	outPath := opts.OutFile
	if outPath == "" && opts.InFile != "" {
		stripped, ok := strings.CutSuffix(opts.InFile, archiveSuffix)
		if !ok {
			return "", fmt.Errorf("%w: could not determine output filename from %s", apperrors.ErrBadArgument, opts.InFile)
		}
		outPath = stripped
	}

	out, target, err := ctx.openOutput(outPath)
	if err != nil {
		return "", err
	}
	defer out.close()

	if err := envelope.Decrypt(out.writer, in, secret); err != nil {
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
			return "", fmt.Errorf("%w: removing input %s after extract: %v", apperrors.ErrIO, opts.InFile, err)
		}
	}
	return outPath, nil
}
