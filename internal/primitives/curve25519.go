package primitives

import (
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// ScalarSize is the size in bytes of a Curve25519 scalar or point.
const ScalarSize = 32

// ClampScalar applies the standard Curve25519 scalar normalization in
// place: byte 0 is masked with 248, byte 31 is masked with 127 and then
// or'd with 64. Clamping is idempotent: ClampScalar(ClampScalar(s)) leaves
// s unchanged.
func ClampScalar(s *[ScalarSize]byte) {
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64
}

// BasePoint multiplies the clamped scalar s by the Curve25519 base point
// (9), producing the corresponding public point.
func BasePoint(s *[ScalarSize]byte) ([ScalarSize]byte, error) {
	out, err := curve25519.X25519(s[:], curve25519.Basepoint)
	if err != nil {
		return [ScalarSize]byte{}, fmt.Errorf("curve25519 base multiplication: %w", err)
	}
	var result [ScalarSize]byte
	copy(result[:], out)
	return result, nil
}

// ScalarMult computes the Curve25519 Diffie-Hellman product of the clamped
// scalar s and the point p, i.e. s*p.
func ScalarMult(s, p *[ScalarSize]byte) ([ScalarSize]byte, error) {
	out, err := curve25519.X25519(s[:], p[:])
	if err != nil {
		return [ScalarSize]byte{}, fmt.Errorf("curve25519 scalar multiplication: %w", err)
	}
	var result [ScalarSize]byte
	copy(result[:], out)
	return result, nil
}
