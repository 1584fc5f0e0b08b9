package primitives

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"hash"
)

// HashSize is the size in bytes of a SHA-256 digest.
const HashSize = sha256.Size

// SHA256 returns the SHA-256 digest of msg.
func SHA256(msg []byte) [HashSize]byte {
	return sha256.Sum256(msg)
}

// NewHMAC returns a new HMAC-SHA-256 instance keyed with key. Callers write
// data via the returned hash.Hash and read the tag with Sum(nil).
func NewHMAC(key []byte) hash.Hash {
	return hmac.New(sha256.New, key)
}

// ConstantTimeEqual reports whether a and b are equal, in time independent
// of their contents (but not their lengths). Used for ProtectionTag and MAC
// verification so that a passphrase or archive verification never leaks
// timing information about how many leading bytes matched.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zero overwrites b with zeros. Used to scrub key material, passphrases,
// and KDF scratch buffers before they are released, per the secret-material
// lifetime discipline in the design notes.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
