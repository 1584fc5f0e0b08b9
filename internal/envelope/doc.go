// Package envelope implements the archive format: an ephemeral-ECDH,
// encrypt-and-MAC construction over ChaCha20 and HMAC-SHA-256.
//
// Layout (big-endian file order):
//
//	offset 0    : ArchiveIV        [8]
//	offset 8    : EphemeralPublic  [32]
//	offset 40   : Ciphertext       [N]  (N = plaintext length, >= 0)
//	offset 40+N : MAC              [32]
//
// The MAC covers plaintext, not ciphertext (encrypt-and-MAC, not
// encrypt-then-MAC). This is weaker than a modern AEAD but is preserved
// deliberately for format compatibility — see the package-level tests for
// the exact tamper-detection guarantees this still provides.
package envelope
