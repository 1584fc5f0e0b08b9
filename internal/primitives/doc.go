// Package primitives implements the cryptographic building blocks the rest
// of enchive-go is built from: Curve25519 scalar clamping and multiplication,
// a streaming ChaCha20 keystream, HMAC-SHA-256, and the constant-time
// comparisons used to check authentication tags.
//
// Every function here is a pure function over byte buffers — there is no
// I/O, no key storage, and no notion of a "session". Higher layers
// (internal/kdf, internal/keyfile, internal/envelope) compose these.
package primitives
