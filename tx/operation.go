package tx

import (
	"bytes"
	"encoding/hex"

	"github.com/graphenego/gphtx/chain"
)

// Extensions is the wire form every operation's trailing extensions
// field shares in this core: always a zero-length set (spec §3/§4.4).
// Modeled as Set[Uint8] rather than Set[StaticVariant] since no
// operation here ever populates it; the element type only matters for
// an empty set's (identical, single varint(0)) wire bytes.
type Extensions = chain.Set[chain.Uint8]

// Operation is any concrete operation body: its wire form is its
// fields in declaration order, it knows its own registry tag, and it
// can render its fields as the JSON mirror spec §4.2 requires (an
// object keyed by the declared field names, with absent optionals
// omitted).
type Operation interface {
	chain.Encoder
	Tag() chain.OperationTag
	MarshalJSON() ([]byte, error)
}

// tagFor derives an operation's registry tag from its Go type name via
// chain.NameOfValue, the same strcase-backed convention SPEC_FULL's
// operation registry is built on. A mismatch between a type's name and
// the registry table is a programming error, not a runtime input
// error, so it panics rather than threading an error return through
// every operation constructor.
func tagFor(v any) chain.OperationTag {
	tag, err := chain.TagOf(chain.NameOfValue(v))
	if err != nil {
		panic(err)
	}
	return tag
}

// TaggedOperation is varint(tag) ‖ bytes(body): the wire wrapper every
// operation carries inside a transaction's operations array.
type TaggedOperation struct {
	Op Operation
}

func (t TaggedOperation) EncodeBuffer(buf *bytes.Buffer) error {
	if err := chain.Varint(t.Op.Tag()).EncodeBuffer(buf); err != nil {
		return err
	}
	return t.Op.EncodeBuffer(buf)
}

// MarshalJSON renders a tagged operation the way python-graphenelib's
// Operation.__str__ does: a 2-element array of [opId, operation body].
func (t TaggedOperation) MarshalJSON() ([]byte, error) {
	body, err := t.Op.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(`[`)
	buf.WriteString(itoa64(int64(t.Op.Tag())))
	buf.WriteByte(',')
	buf.Write(body)
	buf.WriteString(`]`)
	return buf.Bytes(), nil
}

// DecodeBuffer reads the tag and dispatches to the matching typed
// operation's DecodeBuffer. Operation bodies carry no self-length, so
// an operation whose Go type isn't modeled here can't be skipped over
// safely mid-stream: decodeBody returns ErrUndecodableOperation for any
// tag without a registered decoder rather than guessing at its width.
func (t *TaggedOperation) DecodeBuffer(buf *bytes.Buffer) error {
	var tag chain.Varint
	if err := tag.DecodeBuffer(buf); err != nil {
		return err
	}
	if uint64(tag) > uint64(^chain.OperationTag(0)) {
		return ErrUndecodableOperation
	}
	op, err := decodeBody(chain.OperationTag(tag), buf)
	if err != nil {
		return err
	}
	t.Op = op
	return nil
}

// RawOperation is an encode-only escape hatch for submitting an
// operation tag this package hasn't modeled a typed struct for: the
// caller supplies the already-serialized body bytes directly. It
// cannot participate in TaggedOperation decode (operation bodies carry
// no self-length, so an unmodeled body's end can't be located from the
// bytes alone).
type RawOperation struct {
	OpTag chain.OperationTag
	Body  chain.Bytes
}

func (r RawOperation) Tag() chain.OperationTag { return r.OpTag }

func (r RawOperation) EncodeBuffer(buf *bytes.Buffer) error {
	buf.Write(r.Body)
	return nil
}

// MarshalJSON renders the undecoded body as a lowercase hex string,
// the same rendering spec §4.2 specifies for raw byte arrays.
func (r RawOperation) MarshalJSON() ([]byte, error) {
	return []byte(`"` + hex.EncodeToString(r.Body) + `"`), nil
}
