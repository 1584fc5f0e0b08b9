// Package entropy supplies cryptographically secure random bytes to the
// rest of enchive-go. It exists as its own package — rather than every
// caller reaching for crypto/rand directly — so that tests can substitute a
// deterministic Source and so nonce reuse can never be introduced by
// swapping in a non-OS reader (see the design notes' warning against
// replacing the entropy source with a deterministic one in production
// paths).
package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Source supplies cryptographically secure random bytes.
type Source interface {
	Read(p []byte) (n int, err error)
}

// OS is the operating-system-backed entropy source used in production.
var OS Source = rand.Reader

// Bytes draws n cryptographically secure random bytes from src.
func Bytes(src Source, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return buf, nil
}

// Scalar draws 32 fresh random bytes from src, suitable for use as a
// Curve25519 scalar once the caller clamps it with primitives.ClampScalar.
func Scalar(src Source) (*[32]byte, error) {
	buf, err := Bytes(src, 32)
	if err != nil {
		return nil, err
	}
	var s [32]byte
	copy(s[:], buf)
	return &s, nil
}
