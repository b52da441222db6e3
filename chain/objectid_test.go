package chain

import (
	"bytes"
	"testing"
)

func TestObjectIDWire(t *testing.T) {
	cases := []struct {
		text string
		want []byte
	}{
		{"1.3.0", []byte{0x00}},
		{"1.2.7", []byte{0x07}},
		{"1.2.128", []byte{0x80, 0x01}},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			id, err := ParseObjectID(c.text, nil)
			if err != nil {
				t.Fatalf("ParseObjectID: %v", err)
			}
			buf := bytes.NewBuffer(nil)
			if err := id.EncodeBuffer(buf); err != nil {
				t.Fatalf("EncodeBuffer: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), c.want) {
				t.Errorf("wire = % x, want % x", buf.Bytes(), c.want)
			}
		})
	}
}

func TestObjectIDRoundTrip(t *testing.T) {
	id, err := ParseObjectID("1.2.128", nil)
	if err != nil {
		t.Fatalf("ParseObjectID: %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := id.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	var decoded ObjectID
	if err := decoded.DecodeBuffer(buf); err != nil {
		t.Fatalf("DecodeBuffer: %v", err)
	}
	if decoded.Instance != id.Instance {
		t.Errorf("decoded instance = %d, want %d", decoded.Instance, id.Instance)
	}
	// Space and Type are a textual-form-only convention; the wire never
	// carries them, so a freshly decoded id always reports them as zero.
	if decoded.Space != 0 || decoded.Type != ObjectTypeNull {
		t.Errorf("decoded space/type should be zero, got %d/%d", decoded.Space, decoded.Type)
	}
}

func TestParseObjectIDMalformed(t *testing.T) {
	for _, s := range []string{"1.2", "1.2.3.4", "a.b.c", ""} {
		if _, err := ParseObjectID(s, nil); err == nil {
			t.Errorf("ParseObjectID(%q) should fail", s)
		}
	}
}

func TestParseObjectIDTypeCheck(t *testing.T) {
	want := ObjectTypeAccount
	if _, err := ParseObjectID("1.3.0", &want); err == nil {
		t.Errorf("expected type mismatch error for asset id checked against account")
	}
	if _, err := ParseObjectID("1.2.0", &want); err != nil {
		t.Errorf("unexpected error for matching type: %v", err)
	}
}
