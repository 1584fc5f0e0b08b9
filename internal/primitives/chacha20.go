package primitives

import (
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// IVSize is the size in bytes of the 8-byte nonce used to initialize
// ChaCha20 throughout enchive-go (both the archive envelope and the
// secret-key wrap use the short IETF-incompatible nonce, counter 0).
const IVSize = 8

// NewCipher initializes a ChaCha20 keystream generator with the given
// 32-byte key and 8-byte IV, counter starting at zero.
//
// x/crypto/chacha20 implements the IETF variant (12-byte nonce, 32-bit
// block counter) rather than the original 8-byte-nonce/64-bit-counter
// construction; the 8-byte IV is left-padded with four zero bytes to form
// the 12-byte nonce. A single archive would need to exceed 256 GiB before
// the narrower counter could wrap, well outside this tool's scope.
func NewCipher(key *[ScalarSize]byte, iv *[IVSize]byte) (*chacha20.Cipher, error) {
	nonce := make([]byte, chacha20.NonceSize)
	copy(nonce[4:], iv[:])
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, fmt.Errorf("initialize chacha20 cipher: %w", err)
	}
	return c, nil
}

// XORKeyStream XORs src into dst using the given cipher, advancing its
// internal counter. dst and src may be the same slice.
func XORKeyStream(c *chacha20.Cipher, dst, src []byte) {
	c.XORKeyStream(dst, src)
}
