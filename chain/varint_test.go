package chain

import (
	"bytes"
	"testing"
)

type varintCase struct {
	name string
	n    uint64
	want []byte
}

var varintCases = []varintCase{
	{"zero", 0, []byte{0x00}},
	{"one_byte_max", 127, []byte{0x7f}},
	{"two_byte_min", 128, []byte{0x80, 0x01}},
	{"two_byte_max", 16383, []byte{0xff, 0x7f}},
	{"three_byte_min", 16384, []byte{0x80, 0x80, 0x01}},
	{"u64_max", ^uint64(0), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
}

func TestVarintEncode(t *testing.T) {
	for _, c := range varintCases {
		t.Run(c.name, func(t *testing.T) {
			got := EncodeVarint(c.n)
			if !bytes.Equal(got, c.want) {
				t.Errorf("EncodeVarint(%d) = % x, want % x", c.n, got, c.want)
			}
		})
	}
}

func TestVarintDecode(t *testing.T) {
	for _, c := range varintCases {
		t.Run(c.name, func(t *testing.T) {
			n, consumed, err := DecodeVarint(c.want)
			if err != nil {
				t.Fatalf("DecodeVarint: %v", err)
			}
			if n != c.n {
				t.Errorf("DecodeVarint(% x) = %d, want %d", c.want, n, c.n)
			}
			if consumed != len(c.want) {
				t.Errorf("consumed %d bytes, want %d", consumed, len(c.want))
			}
		})
	}
}

func TestVarintDecodeShortBuffer(t *testing.T) {
	_, _, err := DecodeVarint([]byte{0x80})
	if err != ErrVarintOverflow {
		t.Errorf("got err %v, want ErrVarintOverflow", err)
	}
}

func TestVarintDecodeOverflow(t *testing.T) {
	overlong := bytes.Repeat([]byte{0x80}, 11)
	_, _, err := DecodeVarint(overlong)
	if err != ErrVarintOverflow {
		t.Errorf("got err %v, want ErrVarintOverflow", err)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 127, 128, 300, 1 << 20, 1 << 40, ^uint64(0)} {
		got, _, err := DecodeVarint(EncodeVarint(n))
		if err != nil {
			t.Fatalf("round trip %d: %v", n, err)
		}
		if got != n {
			t.Errorf("round trip %d: got %d", n, got)
		}
	}
}
