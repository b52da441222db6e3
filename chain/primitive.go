package chain

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"io"
	"strconv"
)

// Encoder is implemented by every wire value: fixed-width integers,
// strings, composites, operations, and the generics below.
type Encoder interface {
	EncodeBuffer(buf *bytes.Buffer) error
}

// Decoder is the read-side counterpart of Encoder.
type Decoder interface {
	DecodeBuffer(buf *bytes.Buffer) error
}

// Uint8 is a single little-endian byte.
type Uint8 uint8

func (v Uint8) EncodeBuffer(buf *bytes.Buffer) error {
	buf.WriteByte(byte(v))
	return nil
}

func (v *Uint8) DecodeBuffer(buf *bytes.Buffer) error {
	b, err := buf.ReadByte()
	if err != nil {
		return io.ErrShortBuffer
	}
	*v = Uint8(b)
	return nil
}

func (v Uint8) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(v), 10)), nil
}

// Uint16 is a 2-byte little-endian unsigned integer.
type Uint16 uint16

func (v Uint16) EncodeBuffer(buf *bytes.Buffer) error {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], uint16(v))
	buf.Write(tmp[:])
	return nil
}

func (v *Uint16) DecodeBuffer(buf *bytes.Buffer) error {
	if buf.Len() < 2 {
		return io.ErrShortBuffer
	}
	*v = Uint16(binary.LittleEndian.Uint16(buf.Next(2)))
	return nil
}

func (v Uint16) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(v), 10)), nil
}

// Uint32 is a 4-byte little-endian unsigned integer.
type Uint32 uint32

func (v Uint32) EncodeBuffer(buf *bytes.Buffer) error {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	buf.Write(tmp[:])
	return nil
}

func (v *Uint32) DecodeBuffer(buf *bytes.Buffer) error {
	if buf.Len() < 4 {
		return io.ErrShortBuffer
	}
	*v = Uint32(binary.LittleEndian.Uint32(buf.Next(4)))
	return nil
}

func (v Uint32) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(v), 10)), nil
}

// Uint64 is an 8-byte little-endian unsigned integer.
type Uint64 uint64

func (v Uint64) EncodeBuffer(buf *bytes.Buffer) error {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], uint64(v))
	buf.Write(tmp[:])
	return nil
}

func (v *Uint64) DecodeBuffer(buf *bytes.Buffer) error {
	if buf.Len() < 8 {
		return io.ErrShortBuffer
	}
	*v = Uint64(binary.LittleEndian.Uint64(buf.Next(8)))
	return nil
}

// MarshalJSON renders v as a quoted decimal string, since a u64 can
// exceed the safe integer range of JSON number parsers (the same
// reason tzgo's tezos.N/Int render as quoted strings).
func (v Uint64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(v), 10) + `"`), nil
}

// Int64 is an 8-byte little-endian signed integer.
type Int64 int64

func (v Int64) EncodeBuffer(buf *bytes.Buffer) error {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], uint64(v))
	buf.Write(tmp[:])
	return nil
}

func (v *Int64) DecodeBuffer(buf *bytes.Buffer) error {
	if buf.Len() < 8 {
		return io.ErrShortBuffer
	}
	*v = Int64(binary.LittleEndian.Uint64(buf.Next(8)))
	return nil
}

// MarshalJSON renders v as a plain JSON number, matching how Asset's
// hand-written MarshalJSON already renders its amount field.
func (v Int64) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(v), 10)), nil
}

// Bool is a single byte, 0 or 1.
type Bool bool

func (v Bool) EncodeBuffer(buf *bytes.Buffer) error {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	return nil
}

func (v *Bool) DecodeBuffer(buf *bytes.Buffer) error {
	b, err := buf.ReadByte()
	if err != nil {
		return io.ErrShortBuffer
	}
	*v = b != 0
	return nil
}

func (v Bool) MarshalJSON() ([]byte, error) {
	if v {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// StringValue is varint(length) followed by raw UTF-8 bytes.
type StringValue string

func (v StringValue) EncodeBuffer(buf *bytes.Buffer) error {
	Varint(len(v)).EncodeBuffer(buf)
	buf.WriteString(string(v))
	return nil
}

func (v *StringValue) DecodeBuffer(buf *bytes.Buffer) error {
	var l Varint
	if err := l.DecodeBuffer(buf); err != nil {
		return err
	}
	if uint64(buf.Len()) < uint64(l) {
		return io.ErrShortBuffer
	}
	*v = StringValue(buf.Next(int(l)))
	return nil
}

func (v StringValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(v))), nil
}

// Bytes is varint(length) followed by raw bytes.
type Bytes []byte

func (v Bytes) EncodeBuffer(buf *bytes.Buffer) error {
	Varint(len(v)).EncodeBuffer(buf)
	buf.Write(v)
	return nil
}

func (v *Bytes) DecodeBuffer(buf *bytes.Buffer) error {
	var l Varint
	if err := l.DecodeBuffer(buf); err != nil {
		return err
	}
	if uint64(buf.Len()) < uint64(l) {
		return io.ErrShortBuffer
	}
	out := make([]byte, l)
	copy(out, buf.Next(int(l)))
	*v = out
	return nil
}

// MarshalJSON renders v as a lowercase hex string, per spec §4.2's
// rendering rule for raw byte arrays.
func (v Bytes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + hex.EncodeToString(v) + `"`), nil
}

// Void encodes to zero bytes. It is the placeholder value of an unsigned
// transaction's signatures field. Empty extensions lists are not Void:
// they are zero-length sets and encode as a single varint(0) byte.
type Void struct{}

func (Void) EncodeBuffer(buf *bytes.Buffer) error { return nil }
