package orchestrator

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/primitives"
)

// TerminalPassphrase is the production PassphraseProvider: it reads from
// the controlling terminal with echo disabled, refusing to run when stdin
// is not a terminal rather than silently reading a piped value.
type TerminalPassphrase struct{}

// Prompt implements PassphraseProvider.
//
// Per the design notes' open question on terminal input, the underlying
// read truncates at the first carriage return or newline exactly like a
// normal terminal line read — there is no multi-line passphrase support.
func (TerminalPassphrase) Prompt(prompt string, confirm bool) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: stdin is not a terminal", apperrors.ErrIO)
	}

	first, err := readLine(fd, prompt)
	if err != nil {
		return nil, err
	}
	if !confirm {
		return first, nil
	}

	second, err := readLine(fd, "confirm "+prompt)
	if err != nil {
		primitives.Zero(first)
		return nil, err
	}
	if !primitives.ConstantTimeEqual(first, second) {
		primitives.Zero(first)
		primitives.Zero(second)
		return nil, fmt.Errorf("%w: passphrases did not match", apperrors.ErrBadArgument)
	}
	primitives.Zero(second)
	return first, nil
}

func readLine(fd int, prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("%w: reading passphrase: %v", apperrors.ErrIO, err)
	}
	return line, nil
}
