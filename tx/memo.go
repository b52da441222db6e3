package tx

import (
	"bytes"
	"encoding/hex"
	"io"

	"github.com/graphenego/gphtx/chain"
)

// Memo carries an already-encrypted message between two accounts. Key
// agreement and AES encryption of Message are external collaborators
// (see spec Non-goals); this type only encodes the wire envelope
// python-graphenelib's Memo class defines: from, to, nonce, message.
type Memo struct {
	From    chain.PublicKey
	To      chain.PublicKey
	Nonce   chain.Uint64
	Message chain.Bytes
}

func (m Memo) EncodeBuffer(buf *bytes.Buffer) error {
	buf.Write(m.From[:])
	buf.Write(m.To[:])
	if err := m.Nonce.EncodeBuffer(buf); err != nil {
		return err
	}
	return m.Message.EncodeBuffer(buf)
}

func (m *Memo) DecodeBuffer(buf *bytes.Buffer) error {
	if buf.Len() < 66 {
		return io.ErrShortBuffer
	}
	copy(m.From[:], buf.Next(33))
	copy(m.To[:], buf.Next(33))
	if err := m.Nonce.DecodeBuffer(buf); err != nil {
		return err
	}
	return m.Message.DecodeBuffer(buf)
}

func (m Memo) MarshalJSON() ([]byte, error) {
	return []byte(`{"from":"` + m.From.String() + `","to":"` + m.To.String() +
		`","nonce":"` + utoa64(uint64(m.Nonce)) + `","message":"` + hex.EncodeToString(m.Message) + `"}`), nil
}
