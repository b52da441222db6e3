// Package chain implements the primitive wire codec, key, and signature
// types shared by every Graphene-family operation and transaction.
package chain

import (
	"bytes"

	"github.com/pkg/errors"
)

// ErrVarintOverflow is returned when a varint would not fit in a uint64
// or the input byte stream was truncated before a terminating byte.
var ErrVarintOverflow = errors.New("chain: varint overflow")

// maxVarintBytes bounds decoding to the ceiling needed for a u64: 10
// groups of 7 bits cover 70 bits, comfortably more than 64.
const maxVarintBytes = 10

// Varint is an unsigned LEB128-style integer: 7-bit groups, low order
// first, continuation bit (0x80) set on every byte but the last.
type Varint uint64

func NewVarint(v uint64) Varint { return Varint(v) }

func (v Varint) Uint64() uint64 { return uint64(v) }

// EncodeBuffer appends the varint encoding of v to buf.
func (v Varint) EncodeBuffer(buf *bytes.Buffer) error {
	n := uint64(v)
	for n >= 0x80 {
		buf.WriteByte(byte(n&0x7f) | 0x80)
		n >>= 7
	}
	buf.WriteByte(byte(n))
	return nil
}

// DecodeBuffer reads a varint from buf, rejecting overlong encodings.
func (v *Varint) DecodeBuffer(buf *bytes.Buffer) error {
	var (
		result uint64
		shift  uint
	)
	for i := 0; ; i++ {
		if i == maxVarintBytes {
			return ErrVarintOverflow
		}
		b, err := buf.ReadByte()
		if err != nil {
			return ErrVarintOverflow
		}
		if i == maxVarintBytes-1 && b > 1 {
			return ErrVarintOverflow
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			*v = Varint(result)
			return nil
		}
		shift += 7
	}
}

func (v Varint) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	_ = v.EncodeBuffer(buf)
	return buf.Bytes(), nil
}

func (v *Varint) UnmarshalBinary(b []byte) error {
	return v.DecodeBuffer(bytes.NewBuffer(b))
}

// EncodeVarint is a convenience for callers that only need the raw bytes.
func EncodeVarint(n uint64) []byte {
	v := Varint(n)
	b, _ := v.MarshalBinary()
	return b
}

// DecodeVarint decodes a standalone varint and returns the bytes consumed.
func DecodeVarint(data []byte) (uint64, int, error) {
	buf := bytes.NewBuffer(data)
	before := buf.Len()
	var v Varint
	if err := v.DecodeBuffer(buf); err != nil {
		return 0, 0, err
	}
	return uint64(v), before - buf.Len(), nil
}
