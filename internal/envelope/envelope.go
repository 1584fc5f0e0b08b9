package envelope

import (
	"fmt"
	"io"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/entropy"
	"github.com/PolarWolf314/enchive-go/internal/ioutil"
	"github.com/PolarWolf314/enchive-go/internal/primitives"
)

// FormatVersion is the archive format version this build produces and
// accepts. It is folded additively into the derived ArchiveIV so that
// archives from an incompatible version fail the recipient check rather
// than being silently misinterpreted.
const FormatVersion byte = 1

const (
	// HeaderSize is the size of the ArchiveIV + EphemeralPublic prefix
	// that precedes ciphertext.
	HeaderSize = primitives.IVSize + primitives.ScalarSize
	// MACSize is the size of the trailing HMAC-SHA-256 tag.
	MACSize = primitives.HashSize
	// MinArchiveSize is the smallest legal archive: an empty plaintext.
	MinArchiveSize = HeaderSize + MACSize

	chunkSize = 64 * 1024
)

// deriveIV computes ArchiveIV from a Curve25519 shared secret and format
// version: the first 8 bytes of SHA-256(shared), with byte 0 additively
// offset by the version (mod 256).
func deriveIV(shared [primitives.ScalarSize]byte, version byte) [primitives.IVSize]byte {
	digest := primitives.SHA256(shared[:])
	var iv [primitives.IVSize]byte
	copy(iv[:], digest[:primitives.IVSize])
	iv[0] += version
	return iv
}

// Encrypt reads plaintext from r and writes an archive encrypted to
// recipient to w, drawing a fresh ephemeral keypair from src.
//
// The HMAC is computed over plaintext, not ciphertext (encrypt-and-MAC).
// This ordering is a known weakness relative to a modern AEAD but is
// required for archive format compatibility and must not be changed.
func Encrypt(w io.Writer, r io.Reader, recipient [primitives.ScalarSize]byte, src entropy.Source) error {
	ephemeralSecret, err := entropy.Scalar(src)
	if err != nil {
		return fmt.Errorf("draw ephemeral key: %w", err)
	}
	primitives.ClampScalar(ephemeralSecret)
	defer primitives.Zero(ephemeralSecret[:])

	ephemeralPublic, err := primitives.BasePoint(ephemeralSecret)
	if err != nil {
		return fmt.Errorf("compute ephemeral public key: %w", err)
	}

	shared, err := primitives.ScalarMult(ephemeralSecret, &recipient)
	if err != nil {
		return fmt.Errorf("compute shared secret: %w", err)
	}
	defer primitives.Zero(shared[:])

	iv := deriveIV(shared, FormatVersion)

	if err := ioutil.FullWrite(w, iv[:]); err != nil {
		return err
	}
	if err := ioutil.FullWrite(w, ephemeralPublic[:]); err != nil {
		return err
	}

	cipher, err := primitives.NewCipher(&shared, &iv)
	if err != nil {
		return err
	}
	mac := primitives.NewHMAC(shared[:])

	buf := make([]byte, chunkSize)
	out := make([]byte, chunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			mac.Write(buf[:n])
			primitives.XORKeyStream(cipher, out[:n], buf[:n])
			if err := ioutil.FullWrite(w, out[:n]); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("%w: reading plaintext: %v", apperrors.ErrIO, readErr)
		}
	}

	return ioutil.FullWrite(w, mac.Sum(nil))
}

// Decrypt reads an archive from r and writes the recovered plaintext to w,
// using the recipient's secret key.
//
// Plaintext bytes are written before the trailing MAC is verified — the
// format permits this, but callers MUST treat output written before
// Decrypt returns nil as provisional and discard it on error (see the
// orchestrator's cleanup-on-failure discipline).
func Decrypt(w io.Writer, r io.Reader, secret [primitives.ScalarSize]byte) error {
	header := make([]byte, HeaderSize)
	if err := ioutil.FullRead(r, header); err != nil {
		return fmt.Errorf("%w: archive header: %v", apperrors.ErrMalformedInput, err)
	}
	var iv [primitives.IVSize]byte
	copy(iv[:], header[:primitives.IVSize])
	var ephemeralPublic [primitives.ScalarSize]byte
	copy(ephemeralPublic[:], header[primitives.IVSize:])

	shared, err := primitives.ScalarMult(&secret, &ephemeralPublic)
	if err != nil {
		return fmt.Errorf("compute shared secret: %w", err)
	}
	defer primitives.Zero(shared[:])

	expected := deriveIV(shared, FormatVersion)
	if !primitives.ConstantTimeEqual(iv[:], expected[:]) {
		return apperrors.ErrInvalidRecipient
	}

	cipher, err := primitives.NewCipher(&shared, &iv)
	if err != nil {
		return err
	}
	mac := primitives.NewHMAC(shared[:])

	return decryptBody(w, r, cipher, mac)
}

// decryptBody streams the ciphertext body, holding the trailing MACSize
// bytes seen so far as a candidate tag until EOF confirms there is nothing
// left to decrypt.
func decryptBody(w io.Writer, r io.Reader, cipher interface {
	XORKeyStream(dst, src []byte)
}, mac interface {
	Write([]byte) (int, error)
	Sum([]byte) []byte
}) error {
	tail := make([]byte, 0, MACSize)
	chunk := make([]byte, chunkSize)
	plain := make([]byte, 0, chunkSize+MACSize)

	for {
		n, readErr := r.Read(chunk)
		if n > 0 {
			plain = append(plain[:0], tail...)
			plain = append(plain, chunk[:n]...)

			if len(plain) > MACSize {
				emit := plain[:len(plain)-MACSize]
				cipher.XORKeyStream(emit, emit)
				mac.Write(emit)
				if err := ioutil.FullWrite(w, emit); err != nil {
					return err
				}
				tail = append(tail[:0], plain[len(plain)-MACSize:]...)
			} else {
				tail = append(tail[:0], plain...)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("%w: reading ciphertext: %v", apperrors.ErrIO, readErr)
		}
	}

	if len(tail) != MACSize {
		return fmt.Errorf("%w: archive shorter than minimum size", apperrors.ErrMalformedInput)
	}
	if !primitives.ConstantTimeEqual(tail, mac.Sum(nil)) {
		return apperrors.ErrAuthenticationFailed
	}
	return nil
}
