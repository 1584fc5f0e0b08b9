package keyfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enchive.pub")
	var point [32]byte
	for i := range point {
		point[i] = byte(255 - i)
	}

	if err := WritePublicKey(path, point); err != nil {
		t.Fatalf("WritePublicKey: %v", err)
	}

	got, err := ReadPublicKey(path)
	if err != nil {
		t.Fatalf("ReadPublicKey: %v", err)
	}
	if got != point {
		t.Fatalf("round trip mismatch: got %x, want %x", got, point)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Fatalf("public key file mode = %o, want 0600", perm)
	}
}

func TestReadPublicKeyRejectsWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enchive.pub")
	if err := os.WriteFile(path, make([]byte, 16), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := ReadPublicKey(path)
	if !errors.Is(err, apperrors.ErrMalformedInput) {
		t.Fatalf("got error %v, want MalformedInput", err)
	}
}

func TestReadPublicKeyMissingFile(t *testing.T) {
	_, err := ReadPublicKey(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("got error %v, want NotFound", err)
	}
}
