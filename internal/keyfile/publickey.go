package keyfile

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/primitives"
)

// WritePublicKey writes point as a 32-byte public-key file with
// owner-only permissions.
func WritePublicKey(path string, point [primitives.ScalarSize]byte) error {
	return writeOwnerOnly(path, point[:])
}

// ReadPublicKey reads a 32-byte public-key file.
func ReadPublicKey(path string) ([primitives.ScalarSize]byte, error) {
	var point [primitives.ScalarSize]byte
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return point, fmt.Errorf("%w: public key file %s", apperrors.ErrNotFound, path)
		}
		return point, fmt.Errorf("%w: reading %s: %v", apperrors.ErrIO, path, err)
	}
	if len(data) != primitives.ScalarSize {
		return point, fmt.Errorf("%w: public key file %s has size %d, want %d", apperrors.ErrMalformedInput, path, len(data), primitives.ScalarSize)
	}
	copy(point[:], data)
	return point, nil
}
