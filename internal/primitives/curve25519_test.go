package primitives

import "testing"

func TestClampScalarIdempotent(t *testing.T) {
	s := [ScalarSize]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	ClampScalar(&s)
	once := s
	ClampScalar(&s)
	if once != s {
		t.Fatalf("clamp(clamp(s)) != clamp(s): %x vs %x", once, s)
	}
	if s[0]&0x07 != 0 {
		t.Errorf("low 3 bits of byte 0 not cleared: %08b", s[0])
	}
	if s[31]&0x80 != 0 {
		t.Errorf("high bit of byte 31 not cleared: %08b", s[31])
	}
	if s[31]&0x40 == 0 {
		t.Errorf("bit 6 of byte 31 not set: %08b", s[31])
	}
}

func TestBasePointDeterministic(t *testing.T) {
	var s [ScalarSize]byte
	for i := range s {
		s[i] = byte(i + 1)
	}
	ClampScalar(&s)

	a, err := BasePoint(&s)
	if err != nil {
		t.Fatalf("BasePoint: %v", err)
	}
	b, err := BasePoint(&s)
	if err != nil {
		t.Fatalf("BasePoint: %v", err)
	}
	if a != b {
		t.Fatalf("BasePoint not deterministic: %x vs %x", a, b)
	}
	if len(a) != ScalarSize {
		t.Fatalf("BasePoint output size = %d, want %d", len(a), ScalarSize)
	}
}

func TestScalarMultMatchesDiffieHellman(t *testing.T) {
	var a, b [ScalarSize]byte
	for i := range a {
		a[i] = byte(i + 1)
		b[i] = byte(255 - i)
	}
	ClampScalar(&a)
	ClampScalar(&b)

	aPub, err := BasePoint(&a)
	if err != nil {
		t.Fatalf("BasePoint(a): %v", err)
	}
	bPub, err := BasePoint(&b)
	if err != nil {
		t.Fatalf("BasePoint(b): %v", err)
	}

	sharedFromA, err := ScalarMult(&a, &bPub)
	if err != nil {
		t.Fatalf("ScalarMult(a, bPub): %v", err)
	}
	sharedFromB, err := ScalarMult(&b, &aPub)
	if err != nil {
		t.Fatalf("ScalarMult(b, aPub): %v", err)
	}
	if sharedFromA != sharedFromB {
		t.Fatalf("DH shared secrets disagree: %x vs %x", sharedFromA, sharedFromB)
	}
}
