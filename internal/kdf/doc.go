// Package kdf implements the memory-hard passphrase-to-key derivation
// function used to protect secret-key files (see spec §4.2 in the design
// history). It is a deterministic, sequential-memory-hard construction
// built entirely from SHA-256 and HMAC-SHA-256: no external KDF library is
// used because the exact byte-for-byte algorithm (fill-then-random-probe
// over a 2^iexp-byte buffer) is part of the on-disk format and must be
// reproduced exactly, not approximated by a general-purpose KDF like
// scrypt or argon2 with different parameterization.
package kdf
