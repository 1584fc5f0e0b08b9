package envelope

import (
	"bytes"
	"errors"
	"testing"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/primitives"
)

// fakeEntropy is a deterministic Source for tests only; production code
// must never substitute one of these for entropy.OS.
type fakeEntropy struct{ next byte }

func (f *fakeEntropy) Read(p []byte) (int, error) {
	for i := range p {
		f.next++
		p[i] = f.next
	}
	return len(p), nil
}

func keypair(t *testing.T, seed byte) (secret, public [primitives.ScalarSize]byte) {
	t.Helper()
	for i := range secret {
		secret[i] = seed + byte(i)
	}
	primitives.ClampScalar(&secret)
	pub, err := primitives.BasePoint(&secret)
	if err != nil {
		t.Fatalf("BasePoint: %v", err)
	}
	return secret, pub
}

func TestEmptyArchiveRoundTrip(t *testing.T) {
	secret, public := keypair(t, 1)

	var archive bytes.Buffer
	if err := Encrypt(&archive, bytes.NewReader(nil), public, &fakeEntropy{}); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if archive.Len() != MinArchiveSize {
		t.Fatalf("empty archive size = %d, want %d", archive.Len(), MinArchiveSize)
	}

	var plaintext bytes.Buffer
	if err := Decrypt(&plaintext, bytes.NewReader(archive.Bytes()), secret); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if plaintext.Len() != 0 {
		t.Fatalf("decrypted %d bytes from an empty archive", plaintext.Len())
	}
}

func TestRoundTripArbitraryPlaintext(t *testing.T) {
	secret, public := keypair(t, 2)
	want := bytes.Repeat([]byte{0xAB, 0xCD}, 1000)

	var archive bytes.Buffer
	if err := Encrypt(&archive, bytes.NewReader(want), public, &fakeEntropy{}); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	var got bytes.Buffer
	if err := Decrypt(&got, bytes.NewReader(archive.Bytes()), secret); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got.Bytes(), want) {
		t.Fatal("round-tripped plaintext does not match original")
	}
}

func TestTamperedCiphertextFailsAuthentication(t *testing.T) {
	secret, public := keypair(t, 3)
	plaintext := bytes.Repeat([]byte{0}, 65536)

	var archive bytes.Buffer
	if err := Encrypt(&archive, bytes.NewReader(plaintext), public, &fakeEntropy{}); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	tampered := archive.Bytes()
	tampered[HeaderSize] ^= 0x01 // first ciphertext byte

	var out bytes.Buffer
	err := Decrypt(&out, bytes.NewReader(tampered), secret)
	if err == nil {
		t.Fatal("tampered archive decrypted without error")
	}
	if !errors.Is(err, apperrors.ErrAuthenticationFailed) {
		t.Fatalf("got error %v, want AuthenticationFailed", err)
	}
}

func TestWrongRecipientFailsFast(t *testing.T) {
	_, publicA := keypair(t, 4)
	secretB, _ := keypair(t, 40)
	plaintext := []byte("archived for A, not B")

	var archive bytes.Buffer
	if err := Encrypt(&archive, bytes.NewReader(plaintext), publicA, &fakeEntropy{}); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	var out bytes.Buffer
	err := Decrypt(&out, bytes.NewReader(archive.Bytes()), secretB)
	if err == nil {
		t.Fatal("decrypt with wrong secret key succeeded")
	}
	if !errors.Is(err, apperrors.ErrInvalidRecipient) {
		t.Fatalf("got error %v, want InvalidRecipient", err)
	}
	if out.Len() != 0 {
		t.Fatalf("plaintext bytes emitted before recipient check failed: %d", out.Len())
	}
}

func TestArchiveShorterThanMinimumIsRejected(t *testing.T) {
	secret, _ := keypair(t, 5)
	short := make([]byte, MinArchiveSize-1)

	var out bytes.Buffer
	err := Decrypt(&out, bytes.NewReader(short), secret)
	if err == nil {
		t.Fatal("undersized archive decrypted without error")
	}
}

