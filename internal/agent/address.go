package agent

import (
	"encoding/hex"
	"os"
	"path/filepath"
)

// SocketDir returns the directory that hosts agent sockets: the first of
// $XDG_RUNTIME_DIR, $TMPDIR, or /tmp.
func SocketDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	if dir := os.Getenv("TMPDIR"); dir != "" {
		return dir
	}
	return "/tmp"
}

// Address computes the agent socket path for a secret-key file whose
// Salt/IV is iv: $DIR/<16 lowercase hex digits>.
func Address(iv [8]byte) string {
	return filepath.Join(SocketDir(), hex.EncodeToString(iv[:]))
}
