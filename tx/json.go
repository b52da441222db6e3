package tx

import (
	"bytes"
	"strconv"

	"github.com/graphenego/gphtx/chain"
)

func itoa64(v int64) string  { return strconv.FormatInt(v, 10) }
func utoa64(v uint64) string { return strconv.FormatUint(v, 10) }

// extensionsJSON is every operation's trailing extensions field: always
// a zero-length set on the wire (spec §3/§4.4), so always "[]" in JSON.
const extensionsJSON = `[]`

// jsonMarshaler is any value with a hand-written MarshalJSON, the
// shape every composite and operation field in this package uses
// instead of struct-tag-driven encoding/json reflection (spec §4.2:
// wire field order and JSON field order are different contracts, so
// JSON rendering is written out explicitly alongside each type's wire
// codec rather than derived from it).
type jsonMarshaler interface {
	chain.Encoder
	MarshalJSON() ([]byte, error)
}

// marshalOptionalJSON renders o's inner value, or reports ok=false when
// o is absent so the caller can omit the field entirely, matching
// spec §4.2's "optional absent fields are omitted" rule.
func marshalOptionalJSON[T jsonMarshaler](o chain.Optional[T]) (b []byte, ok bool, err error) {
	if !o.Valid {
		return nil, false, nil
	}
	b, err = o.Value.MarshalJSON()
	return b, true, err
}

// writeSetJSON appends a Set/Array's JSON rendering to buf: a JSON
// array of each element's own MarshalJSON rendering.
func writeSetJSON[T jsonMarshaler](buf *bytes.Buffer, set []T) error {
	buf.WriteByte('[')
	for i, v := range set {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return nil
}
