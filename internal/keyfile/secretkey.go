package keyfile

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/entropy"
	"github.com/PolarWolf314/enchive-go/internal/ioutil"
	"github.com/PolarWolf314/enchive-go/internal/kdf"
	"github.com/PolarWolf314/enchive-go/internal/primitives"
)

// FormatVersion is the secret-key file format version this build produces
// and requires on load.
const FormatVersion byte = 1

// Byte offsets within the 64-byte secret-key file.
const (
	offIV           = 0
	offIterations   = 8
	offVersion      = 9
	offProtectHash  = 12
	offSecretScalar = 32

	// SecretKeyFileSize is the total size of a secret-key file on disk.
	SecretKeyFileSize = offSecretScalar + primitives.ScalarSize

	protectHashSize = 20
)

// SecretKey is a decoded, unwrapped secret key: the raw scalar only. It
// carries none of the file's protection metadata (salt, cost exponent).
type SecretKey struct {
	Scalar [primitives.ScalarSize]byte
}

// Zero scrubs the scalar from memory.
func (k *SecretKey) Zero() {
	primitives.Zero(k.Scalar[:])
}

// WriteSecretKey encodes scalar to path, encrypting it with a key derived
// from passphrase at the given cost exponent. An empty passphrase (nil or
// zero-length) stores the key unprotected (iterations byte 0), per the
// propagation policy that treats an empty passphrase as "no protection"
// rather than a hard error.
//
// A fresh 8-byte salt is drawn from src for every protected write, so
// re-wrapping the same scalar under a new passphrase (keygen --edit) always
// produces a file with a different Salt/IV. An unprotected write draws no
// salt and leaves the Salt/IV field zero.
func WriteSecretKey(path string, scalar [primitives.ScalarSize]byte, passphrase []byte, iexp int, src entropy.Source) error {
	buf := make([]byte, SecretKeyFileSize)
	buf[offVersion] = FormatVersion

	if len(passphrase) == 0 {
		copy(buf[offSecretScalar:], scalar[:])
	} else {
		if err := kdf.ValidateCostExponent(iexp); err != nil {
			return err
		}
		saltBytes, err := entropy.Bytes(src, primitives.IVSize)
		if err != nil {
			return fmt.Errorf("draw salt: %w", err)
		}
		var salt [primitives.IVSize]byte
		copy(salt[:], saltBytes)

		protect, err := kdf.Derive(passphrase, iexp, salt)
		if err != nil {
			return fmt.Errorf("derive protection key: %w", err)
		}
		defer primitives.Zero(protect[:])

		tag := primitives.SHA256(protect[:])

		copy(buf[offIV:offIV+primitives.IVSize], salt[:])
		buf[offIterations] = byte(iexp)
		copy(buf[offProtectHash:offProtectHash+protectHashSize], tag[:protectHashSize])

		var iv [primitives.IVSize]byte
		copy(iv[:], salt[:])
		cipher, err := primitives.NewCipher(&protect, &iv)
		if err != nil {
			return err
		}
		primitives.XORKeyStream(cipher, buf[offSecretScalar:], scalar[:])
	}

	return writeOwnerOnly(path, buf)
}

// SecretKeyHeader holds the fixed-size fields of a secret-key file, as read
// and validated by ReadSecretKeyHeader without unwrapping the scalar, so
// callers can consult
// the agent (which is addressed and validated using exactly these fields)
// before prompting for a passphrase.
type SecretKeyHeader struct {
	Salt          [primitives.IVSize]byte
	Iterations    int
	ProtectHash   [protectHashSize]byte
	WrappedScalar [primitives.ScalarSize]byte
	Protected     bool
}

// ReadSecretKeyHeader reads and structurally validates a secret-key file.
func ReadSecretKeyHeader(path string) (*SecretKeyHeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: secret key file %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", apperrors.ErrIO, path, err)
	}
	if len(data) != SecretKeyFileSize {
		return nil, fmt.Errorf("%w: secret key file %s has size %d, want %d", apperrors.ErrMalformedInput, path, len(data), SecretKeyFileSize)
	}
	if data[offVersion] != FormatVersion {
		return nil, fmt.Errorf("%w: secret key file %s has version %d, want %d", apperrors.ErrMalformedInput, path, data[offVersion], FormatVersion)
	}

	h := &SecretKeyHeader{
		Iterations: int(data[offIterations]),
		Protected:  data[offIterations] != 0,
	}
	copy(h.Salt[:], data[offIV:offIV+primitives.IVSize])
	copy(h.ProtectHash[:], data[offProtectHash:offProtectHash+protectHashSize])
	copy(h.WrappedScalar[:], data[offSecretScalar:])
	return h, nil
}

// VerifyProtectionKey reports whether protect is the correct protection
// key for this header, using a constant-time comparison of the truncated
// SHA-256 tag.
func (h *SecretKeyHeader) VerifyProtectionKey(protect [32]byte) bool {
	tag := primitives.SHA256(protect[:])
	return primitives.ConstantTimeEqual(tag[:protectHashSize], h.ProtectHash[:])
}

// DeriveProtectionKey runs the KDF for this header's cost exponent and
// salt against passphrase.
func (h *SecretKeyHeader) DeriveProtectionKey(passphrase []byte) ([32]byte, error) {
	return kdf.Derive(passphrase, h.Iterations, h.Salt)
}

// Unwrap recovers the scalar given the correct protection key (or the
// zero key, if the header is unprotected).
func (h *SecretKeyHeader) Unwrap(protect [32]byte) ([primitives.ScalarSize]byte, error) {
	var scalar [primitives.ScalarSize]byte
	if !h.Protected {
		copy(scalar[:], h.WrappedScalar[:])
		return scalar, nil
	}
	cipher, err := primitives.NewCipher(&protect, &h.Salt)
	if err != nil {
		return scalar, err
	}
	primitives.XORKeyStream(cipher, scalar[:], h.WrappedScalar[:])
	return scalar, nil
}

func writeOwnerOnly(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w: opening %s for writing: %v", apperrors.ErrIO, path, err)
	}
	defer f.Close()
	if err := ioutil.FullWrite(f, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
