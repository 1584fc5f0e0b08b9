package keyfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/entropy"
	"github.com/PolarWolf314/enchive-go/internal/kdf"
)

func tempSecretKeyPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "enchive.sec")
}

func TestSecretKeyRoundTrip(t *testing.T) {
	path := tempSecretKeyPath(t)
	var scalar [32]byte
	for i := range scalar {
		scalar[i] = byte(i)
	}

	if err := WriteSecretKey(path, scalar, []byte("correct horse"), kdf.MinCostExponent, entropy.OS); err != nil {
		t.Fatalf("WriteSecretKey: %v", err)
	}

	header, err := ReadSecretKeyHeader(path)
	if err != nil {
		t.Fatalf("ReadSecretKeyHeader: %v", err)
	}
	if !header.Protected {
		t.Fatal("header not marked protected")
	}

	protect, err := header.DeriveProtectionKey([]byte("correct horse"))
	if err != nil {
		t.Fatalf("DeriveProtectionKey: %v", err)
	}
	if !header.VerifyProtectionKey(protect) {
		t.Fatal("correct passphrase rejected")
	}

	got, err := header.Unwrap(protect)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if got != scalar {
		t.Fatalf("unwrapped scalar mismatch: got %x, want %x", got, scalar)
	}

	wrongProtect, err := header.DeriveProtectionKey([]byte("wrong passphrase"))
	if err != nil {
		t.Fatalf("DeriveProtectionKey: %v", err)
	}
	if header.VerifyProtectionKey(wrongProtect) {
		t.Fatal("wrong passphrase accepted")
	}
}

func TestSecretKeyEmptyPassphraseIsUnprotected(t *testing.T) {
	path := tempSecretKeyPath(t)
	var scalar [32]byte
	scalar[0] = 0x42

	if err := WriteSecretKey(path, scalar, nil, 0, entropy.OS); err != nil {
		t.Fatalf("WriteSecretKey: %v", err)
	}

	header, err := ReadSecretKeyHeader(path)
	if err != nil {
		t.Fatalf("ReadSecretKeyHeader: %v", err)
	}
	if header.Protected {
		t.Fatal("empty-passphrase key marked protected")
	}
	got, err := header.Unwrap([32]byte{})
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if got != scalar {
		t.Fatalf("unwrapped scalar mismatch: got %x, want %x", got, scalar)
	}
}

func TestSecretKeyEditRewrapsWithFreshSaltIV(t *testing.T) {
	path := tempSecretKeyPath(t)
	var scalar [32]byte
	scalar[5] = 0x99

	if err := WriteSecretKey(path, scalar, []byte("p1"), kdf.MinCostExponent, entropy.OS); err != nil {
		t.Fatalf("WriteSecretKey (p1): %v", err)
	}
	first, err := ReadSecretKeyHeader(path)
	if err != nil {
		t.Fatalf("ReadSecretKeyHeader: %v", err)
	}

	if err := WriteSecretKey(path, scalar, []byte("p2"), kdf.MinCostExponent+2, entropy.OS); err != nil {
		t.Fatalf("WriteSecretKey (p2): %v", err)
	}
	second, err := ReadSecretKeyHeader(path)
	if err != nil {
		t.Fatalf("ReadSecretKeyHeader: %v", err)
	}

	if first.Salt == second.Salt {
		t.Fatal("--edit did not change Salt/IV")
	}

	if p1, err := second.DeriveProtectionKey([]byte("p1")); err == nil && second.VerifyProtectionKey(p1) {
		t.Fatal("old passphrase still validates after rewrap")
	}

	p2, err := second.DeriveProtectionKey([]byte("p2"))
	if err != nil {
		t.Fatalf("DeriveProtectionKey: %v", err)
	}
	if !second.VerifyProtectionKey(p2) {
		t.Fatal("new passphrase does not validate after rewrap")
	}
	got, err := second.Unwrap(p2)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if got != scalar {
		t.Fatalf("rewrapped scalar changed: got %x, want %x", got, scalar)
	}
}

func TestReadSecretKeyHeaderRejectsWrongSize(t *testing.T) {
	path := tempSecretKeyPath(t)
	if err := os.WriteFile(path, make([]byte, 10), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := ReadSecretKeyHeader(path)
	if !errors.Is(err, apperrors.ErrMalformedInput) {
		t.Fatalf("got error %v, want MalformedInput", err)
	}
}

func TestReadSecretKeyHeaderMissingFile(t *testing.T) {
	_, err := ReadSecretKeyHeader(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("got error %v, want NotFound", err)
	}
}
