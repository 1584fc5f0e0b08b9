package primitives

import "testing"

func TestXORKeyStreamRoundTrip(t *testing.T) {
	var key [ScalarSize]byte
	var iv [IVSize]byte
	for i := range key {
		key[i] = byte(i)
	}
	for i := range iv {
		iv[i] = byte(i + 1)
	}

	plaintext := []byte("archived plaintext block spanning more than one word")

	encCipher, err := NewCipher(&key, &iv)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	ciphertext := make([]byte, len(plaintext))
	XORKeyStream(encCipher, ciphertext, plaintext)

	if string(ciphertext) == string(plaintext) {
		t.Fatal("ciphertext identical to plaintext")
	}

	decCipher, err := NewCipher(&key, &iv)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	recovered := make([]byte, len(ciphertext))
	XORKeyStream(decCipher, recovered, ciphertext)

	if string(recovered) != string(plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", recovered, plaintext)
	}
}

func TestXORKeyStreamDifferentIVsDiffer(t *testing.T) {
	var key [ScalarSize]byte
	iv1 := [IVSize]byte{0, 0, 0, 0, 0, 0, 0, 1}
	iv2 := [IVSize]byte{0, 0, 0, 0, 0, 0, 0, 2}

	plaintext := make([]byte, 64)

	c1, _ := NewCipher(&key, &iv1)
	out1 := make([]byte, len(plaintext))
	XORKeyStream(c1, out1, plaintext)

	c2, _ := NewCipher(&key, &iv2)
	out2 := make([]byte, len(plaintext))
	XORKeyStream(c2, out2, plaintext)

	if string(out1) == string(out2) {
		t.Fatal("different IVs produced identical keystreams")
	}
}
