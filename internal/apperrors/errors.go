// Package apperrors provides typed sentinel errors for enchive-go.
//
// Using sentinel errors lets callers use errors.Is() instead of string
// matching, and lets the command layer map any error back to one of the
// abstract kinds below for a single-line, non-leaky message on stderr.
//
// # Categories
//
//   - IO: underlying read/write/open failure, including unretryable short
//     reads/writes.
//   - MalformedInput: a key file or archive is too short, carries a bad
//     version byte, or has a truncated MAC region.
//   - AuthenticationFailed: a MAC mismatch on extract, or a passphrase tag
//     mismatch on unwrap.
//   - InvalidRecipient: an archive's derived IV does not match the loaded
//     secret key.
//   - BadArgument: an out-of-range option, mutually exclusive flags, an
//     unparseable numeric option, or an unknown/ambiguous command.
//   - Clobber: the target file exists and --force was not given.
//   - NotFound: a required key file or environment variable is missing.
//   - OutOfMemory: the KDF or an allocation could not be satisfied.
//
// Wrap these with fmt.Errorf("...: %w", ...) at each call site; errors.Is
// still finds the sentinel through any number of wraps.
package apperrors

import "errors"

var (
	// ErrIO indicates a read, write, or open failure that cannot be
	// retried meaningfully.
	ErrIO = errors.New("i/o error")

	// ErrMalformedInput indicates a key file or archive is too short, has
	// a bad version byte, or has a truncated MAC region.
	ErrMalformedInput = errors.New("malformed input")

	// ErrAuthenticationFailed indicates a MAC mismatch on extract or a
	// passphrase tag mismatch on unwrap. Deliberately worded the same for
	// both cases so a caller cannot distinguish "wrong archive" from
	// "wrong passphrase" by error text alone.
	ErrAuthenticationFailed = errors.New("wrong passphrase")

	// ErrInvalidRecipient indicates the archive's derived IV does not
	// match the value recomputed from the loaded secret key.
	ErrInvalidRecipient = errors.New("archive was not encrypted for this key")

	// ErrBadArgument indicates an out-of-range option, mutually exclusive
	// flags, an unparseable numeric option, or an unknown or ambiguous
	// command.
	ErrBadArgument = errors.New("bad argument")

	// ErrClobber indicates the target file already exists and --force was
	// not given.
	ErrClobber = errors.New("refusing to overwrite existing file")

	// ErrNotFound indicates a required key file, home directory, or other
	// resource could not be located.
	ErrNotFound = errors.New("not found")

	// ErrOutOfMemory indicates the KDF's scoped allocation, or some other
	// allocation, could not be satisfied.
	ErrOutOfMemory = errors.New("out of memory")
)
