package chain

import (
	"bytes"
	"testing"
)

func TestOptionalWire(t *testing.T) {
	absent := None[Uint8]()
	buf := bytes.NewBuffer(nil)
	if err := absent.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
		t.Errorf("absent wire = % x, want [00]", buf.Bytes())
	}

	present := Some(Uint8(42))
	buf.Reset()
	if err := present.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01, 0x2a}) {
		t.Errorf("present wire = % x, want [01 2a]", buf.Bytes())
	}
}

func TestOptionalRoundTrip(t *testing.T) {
	present := Some(Uint8(7))
	buf := bytes.NewBuffer(nil)
	if err := present.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	decoded, err := DecodeOptional[Uint8, *Uint8](buf)
	if err != nil {
		t.Fatalf("DecodeOptional: %v", err)
	}
	if !decoded.Valid || decoded.Value != 7 {
		t.Errorf("decoded = %+v, want Valid=true Value=7", decoded)
	}

	absent := None[Uint8]()
	buf.Reset()
	if err := absent.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	decoded, err = DecodeOptional[Uint8, *Uint8](buf)
	if err != nil {
		t.Fatalf("DecodeOptional: %v", err)
	}
	if decoded.Valid {
		t.Errorf("decoded.Valid = true, want false")
	}
}

func TestArrayWire(t *testing.T) {
	a := Array[Uint8]{1, 2, 3}
	buf := bytes.NewBuffer(nil)
	if err := a.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	want := []byte{0x03, 0x01, 0x02, 0x03}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("wire = % x, want % x", buf.Bytes(), want)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	a := Array[Uint8]{9, 8, 7, 6}
	buf := bytes.NewBuffer(nil)
	if err := a.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	decoded, err := DecodeArray[Uint8, *Uint8](buf)
	if err != nil {
		t.Fatalf("DecodeArray: %v", err)
	}
	if len(decoded) != len(a) {
		t.Fatalf("len = %d, want %d", len(decoded), len(a))
	}
	for i := range a {
		if decoded[i] != a[i] {
			t.Errorf("element %d = %d, want %d", i, decoded[i], a[i])
		}
	}
}

func TestEmptySetEncodesAsZeroLengthArray(t *testing.T) {
	var s Set[Uint8]
	buf := bytes.NewBuffer(nil)
	if err := s.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
		t.Errorf("empty set wire = % x, want [00]", buf.Bytes())
	}
}
