// Package orchestrator glues the cryptographic and key-management layers
// into the four user-facing operations: keygen, fingerprint, archive, and
// extract. It owns all in-memory key material during a command and is the
// sole place that decides when a partially written output file must be
// deleted on failure.
//
// Global mutable state the teacher keeps as package variables (paths,
// agent timeout, cleanup targets) is instead threaded explicitly through a
// Context value, so a command's outcome depends only on its arguments and
// that context — not on package-level state left over from a previous
// call, which matters for tests that exercise multiple commands in one
// process.
package orchestrator
