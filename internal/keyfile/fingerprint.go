package keyfile

import (
	"encoding/hex"
	"strings"

	"github.com/PolarWolf314/enchive-go/internal/primitives"
)

// FingerprintSize is the size in bytes of a rendered fingerprint, the
// first 16 bytes of SHA-256(PublicPoint).
const FingerprintSize = 16

// Fingerprint returns the first 16 bytes of SHA-256(point).
func Fingerprint(point [primitives.ScalarSize]byte) [FingerprintSize]byte {
	digest := primitives.SHA256(point[:])
	var fp [FingerprintSize]byte
	copy(fp[:], digest[:FingerprintSize])
	return fp
}

// RenderFingerprint formats a fingerprint as four 8-hex-digit groups
// joined by hyphens, e.g. "deadbeef-01234567-89abcdef-fedcba98".
func RenderFingerprint(fp [FingerprintSize]byte) string {
	hexStr := hex.EncodeToString(fp[:])
	groups := make([]string, 0, 4)
	for i := 0; i < len(hexStr); i += 8 {
		groups = append(groups, hexStr[i:i+8])
	}
	return strings.Join(groups, "-")
}
