package chain

import (
	"bytes"
	"testing"
)

func TestPointInTimeWire(t *testing.T) {
	cases := []struct {
		s    string
		want []byte
	}{
		{"1970-01-01T00:00:00", []byte{0x00, 0x00, 0x00, 0x00}},
		{"2016-01-01T00:00:00", []byte{0x80, 0xc1, 0x85, 0x56}},
	}
	for _, c := range cases {
		t.Run(c.s, func(t *testing.T) {
			pit, err := ParsePointInTime(c.s)
			if err != nil {
				t.Fatalf("ParsePointInTime: %v", err)
			}
			buf := bytes.NewBuffer(nil)
			if err := pit.EncodeBuffer(buf); err != nil {
				t.Fatalf("EncodeBuffer: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), c.want) {
				t.Errorf("wire = % x, want % x", buf.Bytes(), c.want)
			}
		})
	}
}

func TestPointInTimeRejectsBadFormat(t *testing.T) {
	for _, s := range []string{"2016-01-01T00:00:00Z", "not-a-date", "2016-01-01"} {
		if _, err := ParsePointInTime(s); err == nil {
			t.Errorf("ParsePointInTime(%q) should fail", s)
		}
	}
}

func TestPointInTimeRoundTrip(t *testing.T) {
	pit, err := ParsePointInTime("2016-01-01T00:00:00")
	if err != nil {
		t.Fatalf("ParsePointInTime: %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := pit.EncodeBuffer(buf); err != nil {
		t.Fatalf("EncodeBuffer: %v", err)
	}
	var decoded PointInTime
	if err := decoded.DecodeBuffer(buf); err != nil {
		t.Fatalf("DecodeBuffer: %v", err)
	}
	if decoded != pit {
		t.Errorf("round trip = %d, want %d", decoded, pit)
	}
}
