package chain

import (
	"bytes"
	"io"
)

// Optional is tag(1 byte: 0 absent, 1 present) followed by the inner
// value's bytes when present. Per the open question in the governing
// spec, "present" is an explicit construction-time flag; it is never
// inferred from whether the inner value happens to serialize to zero
// bytes (that would conflate "absent" with "present but empty", which
// only diverges for composites whose every field is itself empty — not
// reachable from any operation defined in this package).
type Optional[T Encoder] struct {
	Valid bool
	Value T
}

func Some[T Encoder](v T) Optional[T] {
	return Optional[T]{Valid: true, Value: v}
}

func None[T Encoder]() Optional[T] {
	var zero T
	return Optional[T]{Valid: false, Value: zero}
}

func (o Optional[T]) EncodeBuffer(buf *bytes.Buffer) error {
	if !o.Valid {
		buf.WriteByte(0)
		return nil
	}
	buf.WriteByte(1)
	return o.Value.EncodeBuffer(buf)
}

// DecodeOptional reads an Optional[T] built from a pointer-receiver
// decoder for T. PT exists only to let the generic call (*T).DecodeBuffer.
func DecodeOptional[T any, PT interface {
	*T
	Decoder
}](buf *bytes.Buffer) (Optional[T], error) {
	flag, err := buf.ReadByte()
	if err != nil {
		return Optional[T]{}, io.ErrShortBuffer
	}
	if flag == 0 {
		return Optional[T]{}, nil
	}
	var v T
	if err := PT(&v).DecodeBuffer(buf); err != nil {
		return Optional[T]{}, err
	}
	return Optional[T]{Valid: true, Value: v}, nil
}

// Array is varint(count) followed by the concatenation of each
// element's encoding, in caller-supplied order.
type Array[T Encoder] []T

func (a Array[T]) EncodeBuffer(buf *bytes.Buffer) error {
	if err := Varint(len(a)).EncodeBuffer(buf); err != nil {
		return err
	}
	for _, v := range a {
		if err := v.EncodeBuffer(buf); err != nil {
			return err
		}
	}
	return nil
}

// Set has the identical wire form to Array: the type distinction is
// purely semantic (the chain does not require, and this package does
// not enforce, canonical ordering — callers supply it). It is defined
// as its own generic type, not a generic alias of Array, so it stays
// usable on toolchains that predate generic type aliases.
type Set[T Encoder] []T

func (s Set[T]) EncodeBuffer(buf *bytes.Buffer) error {
	return Array[T](s).EncodeBuffer(buf)
}

// DecodeArray reads an Array[T] built from a pointer-receiver decoder
// for T.
func DecodeArray[T any, PT interface {
	*T
	Decoder
}](buf *bytes.Buffer) (Array[T], error) {
	var l Varint
	if err := l.DecodeBuffer(buf); err != nil {
		return nil, err
	}
	out := make(Array[T], 0, l)
	for i := uint64(0); i < uint64(l); i++ {
		var v T
		if err := PT(&v).DecodeBuffer(buf); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeSet reads a Set[T] built from a pointer-receiver decoder for T.
func DecodeSet[T any, PT interface {
	*T
	Decoder
}](buf *bytes.Buffer) (Set[T], error) {
	a, err := DecodeArray[T, PT](buf)
	return Set[T](a), err
}

// StaticVariant is varint(type_tag) followed by the selected arm's bytes.
type StaticVariant struct {
	Tag   uint64
	Value Encoder
}

func (s StaticVariant) EncodeBuffer(buf *bytes.Buffer) error {
	if err := Varint(s.Tag).EncodeBuffer(buf); err != nil {
		return err
	}
	return s.Value.EncodeBuffer(buf)
}
