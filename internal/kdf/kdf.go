package kdf

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
)

// MinCostExponent and MaxCostExponent bound the accepted cost exponent
// (spec: 5 <= iexp <= 31).
const (
	MinCostExponent = 5
	MaxCostExponent = 31

	saltBlockSize = 64
	blockSize     = 32
)

// ValidateCostExponent enforces the accepted [MinCostExponent,
// MaxCostExponent] range before any allocation is attempted, so a garbage
// or out-of-range value fails fast with BadArgument rather than after a
// multi-gigabyte allocation.
func ValidateCostExponent(iexp int) error {
	if iexp < MinCostExponent || iexp > MaxCostExponent {
		return fmt.Errorf("%w: cost exponent %d out of range [%d,%d]", apperrors.ErrBadArgument, iexp, MinCostExponent, MaxCostExponent)
	}
	return nil
}

// Derive runs the memory-hard KDF over passphrase with the given cost
// exponent and 8-byte salt (an all-zero salt if the caller has none),
// returning a 32-byte key.
//
// The algorithm is deterministic and sequential: it first fills a
// 2^iexp-byte buffer with a SHA-256 hash chain seeded from
// HMAC-SHA-256(salt, passphrase), then performs 2^(iexp-5) rounds of
// self-hashing at a pointer that is rewritten by a value read out of the
// buffer itself, making the derivation both memory-hard (the whole buffer
// must be resident) and hard to parallelize (each round depends on the
// last). Same inputs always produce the same output; the KDF touches up to
// 2^31 bytes of memory at the maximum cost exponent, which callers must
// treat as a scoped, freed-after-use allocation.
//
// A `make` that cannot be satisfied at high cost exponents panics rather
// than returning an error; Derive recovers that panic and reports
// apperrors.ErrOutOfMemory instead of crashing the process.
func Derive(passphrase []byte, iexp int, salt [8]byte) (out [32]byte, err error) {
	if err := ValidateCostExponent(iexp); err != nil {
		return [32]byte{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			out = [32]byte{}
			err = fmt.Errorf("%w: allocating %d-byte KDF buffer: %v", apperrors.ErrOutOfMemory, uint32(1)<<uint(iexp), r)
		}
	}()

	memlen := uint32(1) << uint(iexp)
	mask := memlen - 1
	iterations := uint32(1) << uint(iexp-5)

	var saltBlock [saltBlockSize]byte
	copy(saltBlock[:8], salt[:])

	mac := hmac.New(sha256.New, saltBlock[:])
	mac.Write(passphrase)
	seed := mac.Sum(nil)

	buf := make([]byte, memlen+blockSize)
	defer zero(buf)
	copy(buf[0:blockSize], seed)

	for p := uint32(blockSize); p <= memlen; p += blockSize {
		h := sha256.Sum256(buf[p-blockSize : p])
		copy(buf[p:p+blockSize], h[:])
	}

	ptr := memlen - blockSize
	for i := uint32(0); i < iterations; i++ {
		h := sha256.Sum256(buf[ptr : ptr+blockSize])
		copy(buf[ptr:ptr+blockSize], h[:])

		offset := binary.LittleEndian.Uint32(buf[ptr : ptr+4])
		ptr = offset & mask
	}

	copy(out[:], buf[ptr:ptr+blockSize])
	return out, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
